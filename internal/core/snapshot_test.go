package core

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"towerinv/internal/infra/persistence/sqlite"
	"towerinv/internal/sharefolder"
	"towerinv/internal/snapshot"
	"towerinv/pkg/domain"
)

func TestPublishAndPullSnapshot(t *testing.T) {
	svc, spy := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateTechnician(ctx, domain.Technician{Name: "Ana"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	info, err := svc.PublishSnapshot(ctx)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if info.Name != snapshot.Name || info.Size == 0 {
		t.Fatalf("info = %+v", info)
	}
	if last := spy.last(t); last.op != "publish_snapshot" || !last.ok {
		t.Fatalf("observation = %+v", last)
	}

	meta, err := svc.SnapshotInfo(ctx)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if meta == nil || meta.Size != info.Size {
		t.Fatalf("meta = %+v", meta)
	}

	path, err := svc.PullSnapshot(ctx, "")
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	pulled, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pulled: %v", err)
	}
	working, err := os.ReadFile(svc.Store().(*sqlite.Store).Path())
	if err != nil {
		t.Fatalf("read working: %v", err)
	}
	if !bytes.Equal(pulled, working) {
		t.Fatal("pulled snapshot differs from working database")
	}
}

func TestSnapshotInfoAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	meta, err := svc.SnapshotInfo(context.Background())
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if meta != nil {
		t.Fatalf("meta = %+v, want nil", meta)
	}
}

func TestPullSnapshotAbsent(t *testing.T) {
	svc, spy := newTestService(t)

	_, err := svc.PullSnapshot(context.Background(), "")
	if !errors.Is(err, snapshot.ErrNoSnapshot) {
		t.Fatalf("err = %v", err)
	}
	if last := spy.last(t); last.op != "pull_snapshot" || last.ok {
		t.Fatalf("observation = %+v", last)
	}
}

func TestSnapshotURLUnsupportedOnMemoryDriver(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SnapshotURL(context.Background(), time.Hour)
	if !errors.Is(err, sharefolder.ErrUnsupported) {
		t.Fatalf("err = %v", err)
	}
}
