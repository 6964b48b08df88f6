package analytics

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var MInvocations = stats.Int64("exconsole/invocations", "completed invocations", stats.UnitDimensionless)
var MFailures = stats.Int64("exconsole/failures", "failed invocations", stats.UnitDimensionless)
var MDurationMs = stats.Float64("exconsole/invocation_duration", "invocation duration", stats.UnitMilliseconds)

var KeyAction = tag.MustNewKey("action")
var KeyMode = tag.MustNewKey("mode")

var Views = []*view.View{
	{
		Name:        "exconsole/invocations",
		Measure:     MInvocations,
		Description: "completed invocations by action and mode",
		TagKeys:     []tag.Key{KeyAction, KeyMode},
		Aggregation: view.Count(),
	},
	{
		Name:        "exconsole/failures",
		Measure:     MFailures,
		Description: "failed invocations by action and mode",
		TagKeys:     []tag.Key{KeyAction, KeyMode},
		Aggregation: view.Count(),
	},
	{
		Name:        "exconsole/invocation_duration",
		Measure:     MDurationMs,
		Description: "invocation duration by action and mode",
		TagKeys:     []tag.Key{KeyAction, KeyMode},
		Aggregation: view.Distribution(10, 100, 500, 1000, 5000, 30000),
	},
}

func InitMetrics() error {
	return view.Register(Views...)
}

func RecordActionSuccess(actionLabel string, mode string) {
	_ = stats.RecordWithTags(context.Background(),
		[]tag.Mutator{tag.Upsert(KeyAction, actionLabel), tag.Upsert(KeyMode, mode)},
		MInvocations.M(1))
}

func RecordActionFailure(actionLabel string, mode string) {
	_ = stats.RecordWithTags(context.Background(),
		[]tag.Mutator{tag.Upsert(KeyAction, actionLabel), tag.Upsert(KeyMode, mode)},
		MFailures.M(1))
}

func RecordDuration(actionLabel string, mode string, duration time.Duration) {
	_ = stats.RecordWithTags(context.Background(),
		[]tag.Mutator{tag.Upsert(KeyAction, actionLabel), tag.Upsert(KeyMode, mode)},
		MDurationMs.M(float64(duration.Milliseconds())))
}
