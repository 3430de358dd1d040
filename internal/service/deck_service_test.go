package service_test

import (
	"bytes"
	"context"
	"testing"

	"uniprofile/internal/service"
)

func TestBuildProfileDeck_OK(t *testing.T) {
	t.Parallel()

	svc := service.NewProfileDeckService(newTestLogger())

	file, err := svc.BuildProfileDeck(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if file.Filename != "Profil_IPB_dan_UI.pptx" {
		t.Fatalf("unexpected filename: %q", file.Filename)
	}
	if file.ContentType != "application/vnd.openxmlformats-officedocument.presentationml.presentation" {
		t.Fatalf("unexpected content type: %q", file.ContentType)
	}
	if !bytes.HasPrefix(file.Data, []byte{0x50, 0x4B, 0x03, 0x04}) {
		t.Fatal("deck bytes do not start with the zip signature")
	}
}

func TestBuildProfileDeck_CanceledContext(t *testing.T) {
	t.Parallel()

	svc := service.NewProfileDeckService(newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.BuildProfileDeck(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
