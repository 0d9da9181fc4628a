package colscan

import (
	"context"
	"errors"
	"testing"
)

func TestProcessorRunCSV(t *testing.T) {
	t.Parallel()

	p1 := writeTempFile(t, "a.csv", "id,score\n1,2.5\n2,3.5\n")
	p2 := writeTempFile(t, "b.csv", "id,score\n3,4\n")

	proc := NewProcessor(FormatCSV, WithWorkers(2))
	result, err := proc.Run(context.Background(), p1, p2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("got %d file results, want 2", len(result.Files))
	}
	for _, fr := range result.Files {
		if fr.Err != nil {
			t.Errorf("file %s: unexpected error: %v", fr.Path, fr.Err)
		}
	}
}

func TestProcessorPerFileFailureDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	good := writeTempFile(t, "good.csv", "id\n1\n2\n")
	bad := writeTempFile(t, "bad.csv", "id,name\n1,Alice\n2\n")

	proc := NewProcessor(FormatCSV, WithWorkers(2))
	result, err := proc.Run(context.Background(), good, bad)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("got %d file results, want 2", len(result.Files))
	}

	var sawGood, sawBad bool
	for _, fr := range result.Files {
		switch fr.Path {
		case good:
			sawGood = fr.Err == nil
		case bad:
			sawBad = errors.Is(fr.Err, ErrMalformedRow)
		}
	}
	if !sawGood {
		t.Error("good.csv should have scanned without error")
	}
	if !sawBad {
		t.Error("bad.csv should have failed with ErrMalformedRow")
	}
}

func TestProcessorNegotiate(t *testing.T) {
	t.Parallel()

	p1 := writeTempFile(t, "a.csv", "id,note\n1,x\n")
	p2 := writeTempFile(t, "b.csv", "id,note\n2,3.5\n")

	proc := NewProcessor(FormatCSV, WithNegotiate())
	result, err := proc.Run(context.Background(), p1, p2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Negotiated == nil {
		t.Fatal("Negotiated is nil, want a consensus schema")
	}
	if typ, _ := result.Negotiated.Type("id"); typ != Integer {
		t.Errorf("negotiated id = %s, want integer", typ)
	}
}

func TestProcessorExpandsDirectoryNonRecursively(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTempFileIn(t, dir, "a.csv", "id\n1\n")
	writeTempFileIn(t, dir, "b.csv", "id\n2\n")

	proc := NewProcessor(FormatCSV)
	result, err := proc.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("got %d file results, want 2", len(result.Files))
	}
}

func TestProcessorNoFilesFound(t *testing.T) {
	t.Parallel()

	proc := NewProcessor(FormatCSV)
	result, err := proc.Run(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("got %d file results, want 0", len(result.Files))
	}
}
