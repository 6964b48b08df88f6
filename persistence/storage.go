package persistence

import (
	"fmt"

	"github.com/sukh8282/exconsole/model"
)

// Storage keeps the invocation history. One record is written after
// every presentation, regardless of outcome.
type Storage interface {
	SaveInvocation(record model.InvocationRecord) error
	ListInvocations(limit int) ([]model.InvocationRecord, error)
}

type StorageLayerError struct {
	Message string
}

func (e StorageLayerError) Error() string {
	return fmt.Sprintf("error in underline storage layer %s", e.Message)
}
