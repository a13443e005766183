package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/config"
)

func openSQLiteClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(context.Background(), config.DBConfig{
		DSN:    "file::memory:?cache=shared",
		Driver: config.DBDriverSQLite,
	}, nil)
	if err != nil {
		t.Fatalf("failed to open sqlite client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatal("expected error for missing DSN")
	}
}

func TestPing(t *testing.T) {
	client := openSQLiteClient(t)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	client := openSQLiteClient(t)

	type widget struct {
		ID   int `gorm:"primaryKey"`
		Name string
	}
	if err := client.DB().AutoMigrate(&widget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	boom := errors.New("boom")
	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Create(&widget{Name: "doomed"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var count int64
	if err := client.DB().Model(&widget{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback, found %d rows", count)
	}
}

func TestWithTxCommits(t *testing.T) {
	client := openSQLiteClient(t)

	type gadget struct {
		ID   int `gorm:"primaryKey"`
		Name string
	}
	if err := client.DB().AutoMigrate(&gadget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		return tx.Create(&gadget{Name: "kept"}).Error
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	if err := client.DB().Model(&gadget{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 committed row, found %d", count)
	}
}
