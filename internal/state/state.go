package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/shared"
)

// readSlot decodes the JSON stored under key into T.
// found is false when the key is missing or its value does not parse.
func readSlot[T any](ctx context.Context, store models.SlotStore, key string, logger *log.Logger) (value T, found bool, err error) {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		return value, false, fmt.Errorf("%w: %v", shared.ErrSlotBackend, err)
	}
	if !ok {
		return value, false, nil
	}

	if err := json.Unmarshal(data, &value); err != nil {
		logger.Warn("discarding unreadable slot", "key", key, "error", err)
		var zero T
		return zero, false, nil
	}

	return value, true, nil
}

// writeSlot replaces the value under key with the JSON encoding of value.
func writeSlot(ctx context.Context, store models.SlotStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}

	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrSlotBackend, err)
	}
	return nil
}

func deleteSlot(ctx context.Context, store models.SlotStore, key string) error {
	if err := store.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrSlotBackend, err)
	}
	return nil
}
