package dispatch

import (
	"fmt"
	"strings"
	"time"

	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/model"
)

// BuildContext turns the raw form snapshot into the typed context for
// one invocation. A slot is checked only if the action declares it;
// unused slots stay cleared so nothing leaks from a prior action. The
// first unmet requirement wins. Pure and idempotent.
func BuildContext(act action.Action, raw model.RawFields) (*model.Context, error) {
	spec := act.GetFieldSpec()
	ctx := &model.Context{}

	if spec.Primary {
		value := strings.TrimSpace(raw.Primary)
		if value == "" {
			return nil, model.ValidationError{Field: "primary subject", Reason: "required but empty"}
		}
		ctx.Primary = value
	}
	if spec.Secondary {
		value := strings.TrimSpace(raw.Secondary)
		if value == "" {
			return nil, model.ValidationError{Field: "secondary subject", Reason: "required but empty"}
		}
		ctx.Secondary = value
	}
	if spec.Option {
		value := strings.TrimSpace(raw.Option)
		if !contains(spec.Options, value) {
			return nil, model.ValidationError{Field: "option", Reason: fmt.Sprintf("must be one of %s", strings.Join(spec.Options, ", "))}
		}
		ctx.Option = value
	}
	if spec.Extra {
		value := strings.TrimSpace(raw.Extra)
		if value == "" {
			return nil, model.ValidationError{Field: "extra", Reason: "required but empty"}
		}
		ctx.Extra = value
	}
	if spec.TimeRange {
		start, err := time.Parse(model.TimestampFormat, strings.TrimSpace(raw.Start))
		if err != nil {
			return nil, model.ValidationError{Field: "start time", Reason: fmt.Sprintf("must match format %s", model.TimestampFormat)}
		}
		end, err := time.Parse(model.TimestampFormat, strings.TrimSpace(raw.End))
		if err != nil {
			return nil, model.ValidationError{Field: "end time", Reason: fmt.Sprintf("must match format %s", model.TimestampFormat)}
		}
		if end.Before(start) {
			return nil, model.ValidationError{Field: "end time", Reason: "must not be before start time"}
		}
		ctx.Start = start
		ctx.End = end
	}
	if spec.Messages {
		if strings.TrimSpace(raw.MessageInternal) == "" {
			return nil, model.ValidationError{Field: "internal message", Reason: "required but empty"}
		}
		if strings.TrimSpace(raw.MessageExternal) == "" {
			return nil, model.ValidationError{Field: "external message", Reason: "required but empty"}
		}
		ctx.MessageInternal = raw.MessageInternal
		ctx.MessageExternal = raw.MessageExternal
	}
	return ctx, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
