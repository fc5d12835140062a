package fixtures

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"etherion/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	delete(out, "updated_at")
	return out
}

func encodeDoc(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := EncodeJSON(v)
	require.NoError(t, err)
	return decode(t, data)
}

var updatedAtRE = regexp.MustCompile(`"updated_at": "[^"]*"`)

// normalize drops the clock-dependent field and the trailing newline.
func normalize(data []byte) string {
	data = updatedAtRE.ReplaceAll(data, []byte(`"updated_at": ""`))
	return string(bytes.TrimRight(data, "\n"))
}

func TestGenerate_MatchesGoldenBytes(t *testing.T) {
	cases := []struct {
		dir     string
		cadence string
	}{
		{"daily", "daily"},
		{"tplus3", "tplus3"},
		{"weekly", "weekly"},
		{"t_plus_3", "t+3"},
	}
	for _, tc := range cases {
		t.Run(tc.dir, func(t *testing.T) {
			snap := Generate(types.ParseCadence(tc.cadence), "", fixedNow)

			docs := map[string]any{
				BOARD_FILE:   snap.Board,
				STAGES_FILE:  snap.Stages,
				SENSORS_FILE: snap.Sensors,
			}
			for name, doc := range docs {
				want, err := os.ReadFile(filepath.Join("testdata", "golden", tc.dir, name))
				require.NoError(t, err)
				got, err := EncodeJSON(doc)
				require.NoError(t, err)

				if diff := cmp.Diff(normalize(want), normalize(got)); diff != "" {
					t.Errorf("%s/%s mismatch (-want +got):\n%s", tc.dir, name, diff)
				}
			}
		})
	}
}

func TestEncodeJSON_KeepsDecimalPoint(t *testing.T) {
	snap := Generate(types.ParseCadence("tplus3"), "", fixedNow)
	data, err := EncodeJSON(snap.Board)
	require.NoError(t, err)

	// Ondo TVL_3d rounds to negative zero, ZKM scores exactly 65
	assert.Contains(t, string(data), `"TVL_3d": -0.0,`)
	assert.Contains(t, string(data), `"score_total": 65.0,`)
	assert.NotRegexp(t, `"score_total": \d+,`, string(data))
}

func TestGenerate_DeterministicAcrossClock(t *testing.T) {
	a := Generate(types.Weekly, "", fixedNow)
	b := Generate(types.Weekly, "", fixedNow.Add(72*time.Hour))

	assert.NotEqual(t, a.Board.UpdatedAt, b.Board.UpdatedAt)
	if diff := cmp.Diff(a.Board.Items, b.Board.Items); diff != "" {
		t.Fatalf("items differ:\n%s", diff)
	}
	if diff := cmp.Diff(a.Stages, b.Stages); diff != "" {
		t.Fatalf("stages differ:\n%s", diff)
	}
	if diff := cmp.Diff(a.Sensors, b.Sensors); diff != "" {
		t.Fatalf("sensors differ:\n%s", diff)
	}
}

func TestGenerate_Header(t *testing.T) {
	snap := Generate(types.ParseCadence("t+3"), "", fixedNow)
	assert.Equal(t, DEFAULT_SCHEMA_VERSION, snap.Board.SchemaVersion)
	assert.Equal(t, "2026-10-19 18:30 UTC", snap.Board.UpdatedAt)
	assert.Equal(t, "daily", snap.Board.Cadence)
	assert.Equal(t, "daily", snap.Stages.Cadence)
	assert.Equal(t, "daily", snap.Sensors.Cadence)

	tplus := Generate(types.ParseCadence("tplus3"), "", fixedNow)
	assert.Equal(t, "t+3", tplus.Board.Cadence)

	custom := Generate(types.Daily, "2.0.0", fixedNow)
	assert.Equal(t, "2.0.0", custom.Board.SchemaVersion)
}

func TestSkeleton_Shape(t *testing.T) {
	snap := Skeleton(types.Weekly, "", fixedNow)

	board := encodeDoc(t, snap.Board)
	assert.Equal(t, []any{}, board["items"])
	assert.Equal(t, map[string]any{"s5_regime": "neutral", "score": 0.5}, board["market_regime"])

	st := encodeDoc(t, snap.Stages)
	assert.Equal(t, []any{}, st["watchlist"])
	assert.Equal(t, 0.0, st["fake_start"])
	pools := st["stages"].(map[string]any)
	assert.Len(t, pools, 5)
	assert.Equal(t, map[string]any{"pool": []any{}}, pools["S3"])

	sn := encodeDoc(t, snap.Sensors)
	assert.Equal(t, []any{}, sn["layers"])
}

func TestWrite_Files(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	snap := Generate(types.Weekly, "", fixedNow)

	paths, err := Write(context.Background(), dir, snap, WriteOptions{CSV: true}, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, BOARD_FILE),
		filepath.Join(dir, STAGES_FILE),
		filepath.Join(dir, SENSORS_FILE),
		filepath.Join(dir, BOARD_CSV),
	}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"structure": "再质押（Restaking 协议）"`)
	assert.Contains(t, string(data), `"updated_at": "2026-10-19 18:30 UTC"`)
	assert.Contains(t, string(data), `"current_price": null`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4, "no temp files left behind")
}

func TestWrite_Overwrites(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(context.Background(), dir, Generate(types.Daily, "", fixedNow), WriteOptions{}, nil)
	require.NoError(t, err)
	_, err = Write(context.Background(), dir, Generate(types.Weekly, "", fixedNow), WriteOptions{}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, STAGES_FILE))
	require.NoError(t, err)
	assert.Equal(t, "weekly", decode(t, data)["cadence"])

	_, err = os.Stat(filepath.Join(dir, BOARD_CSV))
	assert.True(t, os.IsNotExist(err))
}

func TestWrite_RemovesStaleCSV(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(context.Background(), dir, Generate(types.Weekly, "", fixedNow), WriteOptions{CSV: true}, nil)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, BOARD_CSV))
	require.NoError(t, err)

	_, err = Write(context.Background(), dir, Generate(types.Daily, "", fixedNow), WriteOptions{}, nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, BOARD_CSV))
	assert.True(t, os.IsNotExist(err), "board.csv from the earlier run should be gone")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestWrite_DirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Write(context.Background(), file, Generate(types.Daily, "", fixedNow), WriteOptions{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output dir")
}

func TestWrite_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := Write(ctx, dir, Generate(types.Daily, "", fixedNow), WriteOptions{}, nil)
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
