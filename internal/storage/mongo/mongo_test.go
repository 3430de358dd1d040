//go:build integration

package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"uniprofile/internal/config"
	"uniprofile/pkg/e"
)

var (
	testURI string
	tc      testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("27017/tcp"),
			wait.ForLog("Waiting for connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "27017/tcp")
	testURI = fmt.Sprintf("mongodb://%s:%s", host, mappedPort.Port())

	code := m.Run()

	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func testConfig(database string) *config.Config {
	return &config.Config{
		Mongo: config.MongoConfig{
			URL:          testURI,
			Database:     database,
			ProbeTimeout: 10 * time.Second,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// seedCollections materializes collections by inserting one document each.
func seedCollections(t *testing.T, database string, names []string) {
	t.Helper()
	ctx := context.Background()

	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(testURI))
	if err != nil {
		t.Fatalf("seed connect: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	for _, n := range names {
		_, err := client.Database(database).Collection(n).InsertOne(ctx, bson.D{{Key: "seed", Value: true}})
		if err != nil {
			t.Fatalf("seed %s.%s: %v", database, n, err)
		}
	}
}

func TestNewMongo_ConnectListClose(t *testing.T) {
	seedCollections(t, "campus", []string{"mahasiswa", "fakultas"})

	store, err := NewMongo(context.Background(), testConfig("campus"), testLogger())
	if err != nil {
		t.Fatalf("NewMongo: %v", err)
	}

	if got := store.Name(); got != "campus" {
		t.Fatalf("expected database name campus, got %q", got)
	}

	names, err := store.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("ListCollections: %v", err)
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != "fakultas" || names[1] != "mahasiswa" {
		t.Fatalf("unexpected collections: %v", names)
	}

	if err := store.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewMongo_EmptyDatabase_NoCollections(t *testing.T) {
	store, err := NewMongo(context.Background(), testConfig("kosong"), testLogger())
	if err != nil {
		t.Fatalf("NewMongo: %v", err)
	}
	defer store.Close(context.Background())

	names, err := store.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("ListCollections: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no collections, got %v", names)
	}
}

func TestNewMongo_NotConfigured(t *testing.T) {
	cfg := &config.Config{
		Mongo: config.MongoConfig{ProbeTimeout: time.Second},
	}

	_, err := NewMongo(context.Background(), cfg, testLogger())
	if !errors.Is(err, e.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewMongo_UnreachableHost(t *testing.T) {
	cfg := &config.Config{
		Mongo: config.MongoConfig{
			URL:          "mongodb://127.0.0.1:1",
			Database:     "campus",
			ProbeTimeout: 2 * time.Second,
		},
	}

	if _, err := NewMongo(context.Background(), cfg, testLogger()); err == nil {
		t.Fatal("expected connect error for unreachable host")
	}
}

func TestListCollections_ExpiredContext(t *testing.T) {
	store, err := NewMongo(context.Background(), testConfig("campus"), testLogger())
	if err != nil {
		t.Fatalf("NewMongo: %v", err)
	}
	defer store.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err = store.ListCollections(ctx)
	if !errors.Is(err, e.ErrDeadline) {
		t.Fatalf("expected ErrDeadline, got %v", err)
	}
}
