package book_test

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"corvid/pkg/board"
	"corvid/pkg/book"
	"corvid/pkg/square"
)

func TestMove16RoundTrip(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	m := b.NewMove(square.E2, square.E4)

	m16 := book.NewMove16(m)

	if m16.Source() != square.E2 {
		t.Errorf("source: got %v, want %v", m16.Source(), square.E2)
	}
	if m16.Target() != square.E4 {
		t.Errorf("target: got %v, want %v", m16.Target(), square.E4)
	}
	if !m16.Matches(m) {
		t.Errorf("expected round-tripped move16 to match the original move")
	}
}

func TestProbePicksLegalRecordedMove(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	e4 := b.NewMove(square.E2, square.E4)
	d4 := b.NewMove(square.D2, square.D4)

	var buf bytes.Buffer

	// record e4 three times and d4 once, so e4 should win an
	// overwhelming majority of the time
	for i := 0; i < 3; i++ {
		writeRecord(t, &buf, uint64(b.Hash), uint16(book.NewMove16(e4)))
	}
	writeRecord(t, &buf, uint64(b.Hash), uint16(book.NewMove16(d4)))

	loaded, err := book.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	legal := b.GenerateMoves()
	rng := rand.New(rand.NewSource(1))

	counts := map[string]int{}
	for i := 0; i < 200; i++ {
		m, ok := loaded.Probe(b.Hash, legal, rng)
		if !ok {
			t.Fatalf("Probe: expected a recorded reply")
		}
		counts[m.String()]++
	}

	if counts[e4.String()] == 0 {
		t.Errorf("expected e4 to be picked at least once, got counts %v", counts)
	}
	if counts[e4.String()] <= counts[d4.String()] {
		t.Errorf("expected e4 (weight 3) to be picked more often than d4 (weight 1), got %v", counts)
	}
}

func TestProbeMissReturnsFalse(t *testing.T) {
	b := board.NewBoard(board.StartFEN)

	loaded, err := book.Load(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := loaded.Probe(b.Hash, b.GenerateMoves(), rand.New(rand.NewSource(1))); ok {
		t.Errorf("expected no reply from an empty book")
	}
}

func writeRecord(t *testing.T, buf *bytes.Buffer, key uint64, move16 uint16) {
	t.Helper()
	if err := binary.Write(buf, binary.LittleEndian, key); err != nil {
		t.Fatalf("writeRecord: %v", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, move16); err != nil {
		t.Fatalf("writeRecord: %v", err)
	}
}
