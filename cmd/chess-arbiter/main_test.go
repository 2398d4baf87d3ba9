package main

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    chess.Move
		wantErr bool
		column  int
	}{
		{name: "pawn double step", input: "1,4:3,4", want: chess.Move{From: chess.Sq(1, 4), To: chess.Sq(3, 4)}},
		{name: "corners", input: "0,0:7,7", want: chess.Move{From: chess.Sq(0, 0), To: chess.Sq(7, 7)}},
		{name: "missing destination", input: "1,4", wantErr: true, column: 4},
		{name: "missing column", input: "1,4:3", wantErr: true, column: 6},
		{name: "letter coordinate", input: "a,4:3,4", wantErr: true, column: 1},
		{name: "row off board", input: "1,4:8,4", wantErr: true, column: 5},
		{name: "negative column", input: "1,4:3,-1", wantErr: true, column: 7},
		{name: "empty", input: "", wantErr: true, column: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMove(tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
				return
			}

			require.ErrorIs(t, err, errors.ErrMoveSyntax)
			var pe *errors.ParseError
			require.True(t, stderrors.As(err, &pe))
			require.Equal(t, tt.column, pe.Column)
			require.Equal(t, tt.input, pe.Input)
		})
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := parseMoves("  1,4:3,4\t6,4:4,4\n")
	require.NoError(t, err)
	require.Equal(t, []chess.Move{
		{From: chess.Sq(1, 4), To: chess.Sq(3, 4)},
		{From: chess.Sq(6, 4), To: chess.Sq(4, 4)},
	}, moves)

	moves, err = parseMoves("")
	require.NoError(t, err)
	require.Empty(t, moves)

	_, err = parseMoves("1,4:3,4 bad")
	require.ErrorIs(t, err, errors.ErrMoveSyntax)
}

func TestFormatMove(t *testing.T) {
	m := chess.Move{From: chess.Sq(7, 3), To: chess.Sq(3, 7)}
	require.Equal(t, "7,3:3,7", output.FormatMove(m))

	back, err := parseMove(output.FormatMove(m))
	require.NoError(t, err)
	require.Equal(t, m, back)
}

// runWith runs the harness and returns what it printed and logged.
func runWith(t *testing.T, b *config.ConfigBuilder) (out, logs string, err error) {
	t.Helper()
	var outBuf, logBuf bytes.Buffer
	cfg := b.WithOutput(&outBuf).WithLogFile(&logBuf).Build()
	require.NoError(t, cfg.Validate())
	err = run(context.Background(), cfg)
	return outBuf.String(), logBuf.String(), err
}

func TestRun_DefaultMove(t *testing.T) {
	out, logs, err := runWith(t, config.NewConfigBuilder().WithMoves(defaultMoves))
	require.NoError(t, err)

	require.Contains(t, out, "3 ....P...\n")
	require.Contains(t, out, "1 PPPP.PPP\n")
	require.Contains(t, out, "Turn: Black\n")
	require.Contains(t, out, "Status: in progress\n")
	require.Contains(t, logs, "1 move(s) played")
}

func TestRun_FoolsMate(t *testing.T) {
	out, logs, err := runWith(t, config.NewConfigBuilder().
		WithMoves("1,5:2,5 6,4:4,4 1,6:3,6 7,3:3,7").
		WithVerbosity(2).
		ShowHistory(true))
	require.NoError(t, err)

	require.Contains(t, out, "Status: checkmate\n")
	require.Contains(t, out, "Winner: Black\n")
	require.Contains(t, out, "4. Black Queen 7,3:3,7\n")
	require.Contains(t, logs, "Black played 7,3:3,7")
	require.Contains(t, logs, "White is in check")
}

func TestRun_RejectedMove(t *testing.T) {
	out, logs, err := runWith(t, config.NewConfigBuilder().WithMoves("1,4:3,4 1,3:3,3"))

	require.ErrorIs(t, err, errors.ErrWrongTurn)
	require.Contains(t, err.Error(), "ply 2")
	require.Contains(t, logs, "Rejected 1,3:3,3 for Black")
	require.Empty(t, out)
}

func TestRun_StrictLegality(t *testing.T) {
	const pinned = "k3r3/8/8/8/8/8/4B3/4K3 w - - 0 1"

	_, _, err := runWith(t, config.NewConfigBuilder().WithStartFEN(pinned).WithMoves("1,4:2,5"))
	require.NoError(t, err)

	_, _, err = runWith(t, config.NewConfigBuilder().
		WithStartFEN(pinned).
		WithMoves("1,4:2,5").
		WithStrictLegality(true))
	require.ErrorIs(t, err, errors.ErrLeavesKingInCheck)
}

func TestRun_InputErrors(t *testing.T) {
	_, _, err := runWith(t, config.NewConfigBuilder().WithStartFEN("8/8/8/8 w - -"))
	require.ErrorIs(t, err, errors.ErrInvalidFEN)
	require.True(t, strings.HasPrefix(err.Error(), "parsing -fen"), err.Error())

	_, _, err = runWith(t, config.NewConfigBuilder().WithMoves("1-4:3-4"))
	require.ErrorIs(t, err, errors.ErrMoveSyntax)
	require.True(t, strings.HasPrefix(err.Error(), "parsing -moves"), err.Error())
}

func TestRun_Perft(t *testing.T) {
	out, logs, err := runWith(t, config.NewConfigBuilder().
		WithMoves("").
		WithPerft(2, false).
		ShowBoard(false))
	require.NoError(t, err)
	require.Contains(t, out, "perft(2) = 400\n")
	require.Contains(t, logs, "perft(2) took")
}

func TestRun_PerftDivide(t *testing.T) {
	out, _, err := runWith(t, config.NewConfigBuilder().
		WithMoves("").
		WithPerft(2, true).
		WithWorkers(3).
		ShowBoard(false))
	require.NoError(t, err)

	require.Contains(t, out, "1,4:3,4 20\n")
	require.Contains(t, out, "0,6:2,5 20\n")
	require.Contains(t, out, "perft(2) = 400\n")
	require.Equal(t, 20, strings.Count(out, " 20\n"))
}

func TestRun_PerftHashTable(t *testing.T) {
	out, logs, err := runWith(t, config.NewConfigBuilder().
		WithStartFEN("k7/8/8/8/8/8/8/7K w - - 0 1").
		WithMoves("").
		WithPerft(5, true).
		WithHashEntries(1<<16).
		WithVerbosity(2).
		ShowBoard(false))
	require.NoError(t, err)

	board, toMove, err := engine.NewBoardFromFEN("k7/8/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)
	require.Contains(t, out, fmt.Sprintf("perft(5) = %d\n", engine.Perft(board, toMove, 5)))
	require.Contains(t, logs, "perft table:")
}

func TestRun_JSON(t *testing.T) {
	out, _, err := runWith(t, config.NewConfigBuilder().
		WithMoves("1,5:2,5 6,4:4,4 1,6:3,6 7,3:3,7").
		WithPerft(1, false).
		WithJSON(true))
	require.NoError(t, err)

	var report output.JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, "checkmate", report.Status)
	require.Equal(t, "black", report.Winner)
	require.Len(t, report.Board, 8)
	require.NotNil(t, report.Perft)
	require.Equal(t, uint64(0), report.Perft.Nodes)
}

func TestRun_ListLegalMoves(t *testing.T) {
	out, _, err := runWith(t, config.NewConfigBuilder().
		WithStartFEN("k7/8/8/8/8/8/8/7K w - - 0 1").
		WithMoves("").
		ListLegalMoves(true))
	require.NoError(t, err)
	require.Contains(t, out, "Legal moves (3): 0,7:1,7 0,7:0,6 0,7:1,6\n")
}

func TestRun_Quiet(t *testing.T) {
	_, logs, err := runWith(t, config.NewConfigBuilder().WithVerbosity(0))
	require.NoError(t, err)
	require.Empty(t, logs)
}

func TestRun_PerftCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, logs bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithMoves("").
		WithPerft(4, true).
		WithOutput(&out).
		WithLogFile(&logs).
		Build()

	err := run(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
	require.Contains(t, logs.String(), "perft(4) abandoned")
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbiter.log")
	defer saveRestoreString(logFile, path)()

	cfg := config.NewConfig()
	closeLog, err := setupLogFile(cfg)
	require.NoError(t, err)

	logf(cfg, 1, "%d move(s) played", 2)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2 move(s) played\n", string(data))
}

func TestSetupLogFile_Errors(t *testing.T) {
	defer saveRestoreString(logFile, filepath.Join(t.TempDir(), "missing", "arbiter.log"))()

	cfg := config.NewConfig()
	_, err := setupLogFile(cfg)
	require.Error(t, err)
	require.Equal(t, os.Stderr, cfg.LogFile)
}

func TestSetupLogFile_NoFlag(t *testing.T) {
	defer saveRestoreString(logFile, "")()

	cfg := config.NewConfig()
	closeLog, err := setupLogFile(cfg)
	require.NoError(t, err)
	closeLog()
	require.Equal(t, os.Stderr, cfg.LogFile)
}
