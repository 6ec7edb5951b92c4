// Copyright © 2024 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command corvidbook compiles a PGN game corpus into the binary opening
// book format consumed by pkg/book. It replays every game with
// notnil/chess, folding each played move into the corresponding
// pkg/board position and recording it against that position's zobrist
// key, up to a configurable book depth.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/notnil/chess"
	pgn "gopkg.in/freeeve/pgn.v1"

	"corvid/pkg/board"
	"corvid/pkg/book"
	"corvid/pkg/piece"
	"corvid/pkg/square"
)

func main() {
	pgnDir := flag.String("pgn", "./games", "directory of .pgn files to compile")
	outPath := flag.String("out", "book.bin", "output book file")
	maxPlys := flag.Int("plys", 20, "maximum ply depth to record from each game")
	flag.Parse()

	if err := run(*pgnDir, *outPath, *maxPlys); err != nil {
		fmt.Fprintln(os.Stderr, "corvidbook:", err)
		os.Exit(1)
	}
}

// recorded is one (position zobrist key, move16) pair; run tallies how
// many times each pair was played in its counts map.
type recorded struct {
	key    uint64
	move16 book.Move16
}

func run(pgnDir, outPath string, maxPlys int) error {
	counts := map[recorded]int{}
	// preserve first-seen order of keys so the output file is stable
	// across runs of the same corpus.
	var order []recorded

	totalGames := 0

	err := filepath.WalkDir(pgnDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".pgn") {
			return nil
		}

		gameCount, scanErr := precount(path)
		if scanErr != nil {
			fmt.Fprintf(os.Stderr, "corvidbook: pre-scan %s: %v\n", path, scanErr)
		} else {
			fmt.Fprintf(os.Stderr, "corvidbook: %s: %d games\n", path, gameCount)
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		scanner := chess.NewScanner(f)
		for scanner.Scan() {
			game := scanner.Next()
			totalGames++

			chessboard := board.NewBoard(board.StartFEN)
			for i, gameMove := range game.Moves() {
				if i >= maxPlys {
					break
				}

				source := squareFromChess(gameMove.S1())
				target := squareFromChess(gameMove.S2())

				boardMove := chessboard.NewMove(source, target)
				switch gameMove.Promo() {
				case chess.Knight:
					boardMove = boardMove.SetPromotion(piece.New(piece.Knight, chessboard.SideToMove))
				case chess.Bishop:
					boardMove = boardMove.SetPromotion(piece.New(piece.Bishop, chessboard.SideToMove))
				case chess.Rook:
					boardMove = boardMove.SetPromotion(piece.New(piece.Rook, chessboard.SideToMove))
				case chess.Queen:
					boardMove = boardMove.SetPromotion(piece.New(piece.Queen, chessboard.SideToMove))
				}

				key := recorded{key: uint64(chessboard.Hash), move16: book.NewMove16(boardMove)}
				if counts[key] == 0 {
					order = append(order, key)
				}
				counts[key]++

				chessboard.MakeMove(boardMove)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, entry := range order {
		for n := 0; n < counts[entry]; n++ {
			if err := binary.Write(w, binary.LittleEndian, entry.key); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, uint16(entry.move16)); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(os.Stderr, "corvidbook: compiled %d games, %d distinct position/move pairs\n", totalGames, len(order))
	return w.Flush()
}

// precount uses the lighter-weight freeeve/pgn.v1 scanner to report how
// many games a file holds before the slower notnil/chess replay pass,
// purely for progress reporting.
func precount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := pgn.NewPGNReader(f)

	count := 0
	for {
		game := reader.Next()
		if game == nil {
			break
		}
		count++
	}

	return count, nil
}

func squareFromChess(s chess.Square) square.Square {
	sq := square.Square(s)
	return square.New(square.File(sq%8), 7-square.Rank(sq/8))
}
