package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/cinevault/internal/models"
	"github.com/go-redis/redismock/v9"
)

func TestRedisSlotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Get found", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := NewRedisSlotStore(client, "cinevault")

		mock.ExpectGet("cinevault:cart").SetVal(`[]`)

		value, found, err := store.Get(ctx, models.SlotCart)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !found || string(value) != `[]` {
			t.Errorf("Get() = (%q, %v), want ([], true)", value, found)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("Get missing key", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := NewRedisSlotStore(client, "cinevault")

		mock.ExpectGet("cinevault:user").RedisNil()

		value, found, err := store.Get(ctx, models.SlotUser)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if found || value != nil {
			t.Errorf("expected missing slot, got (%q, %v)", value, found)
		}
	})

	t.Run("Get error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := NewRedisSlotStore(client, "cinevault")

		mock.ExpectGet("cinevault:user").SetErr(errors.New("connection refused"))

		if _, _, err := store.Get(ctx, models.SlotUser); err == nil {
			t.Fatal("expected error from redis")
		}
	})

	t.Run("Set without prefix", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := NewRedisSlotStore(client, "")

		payload := []byte(`[{"id":1}]`)
		mock.ExpectSet("purchasedMovies", payload, 0).SetVal("OK")

		if err := store.Set(ctx, models.SlotPurchases, payload); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("Set error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := NewRedisSlotStore(client, "p")

		payload := []byte(`[]`)
		mock.ExpectSet("p:cart", payload, 0).SetErr(errors.New("READONLY"))

		if err := store.Set(ctx, models.SlotCart, payload); err == nil {
			t.Fatal("expected error from redis")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := NewRedisSlotStore(client, "cinevault")

		mock.ExpectDel("cinevault:user").SetVal(1)

		if err := store.Delete(ctx, models.SlotUser); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}
