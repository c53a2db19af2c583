package domain_test

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/openspace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inOrder leaves the names in input order.
type inOrder struct{}

func (inOrder) Shuffle(int, func(i, j int)) {}

func newRoom(t *testing.T, tables, seats int) *domain.OpenSpace {
	t.Helper()
	room, err := domain.NewOpenSpace(tables, seats)
	require.NoError(t, err)
	return room
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("person-%02d", i+1)
	}
	return out
}

func seatedNames(room *domain.OpenSpace) []string {
	var out []string
	for _, table := range room.Tables() {
		for _, occ := range table.Occupants() {
			if occ != nil {
				out = append(out, *occ)
			}
		}
	}
	return out
}

func TestNewOpenSpace(t *testing.T) {
	room := newRoom(t, domain.DefaultTables, domain.DefaultSeatsPerTable)

	assert.Len(t, room.Tables(), 6)
	assert.Equal(t, 24, room.Capacity())
	assert.Equal(t, 24, room.LeftCapacity())
}

func TestNewOpenSpace_Fail_Negative(t *testing.T) {
	_, err := domain.NewOpenSpace(-1, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)

	_, err = domain.NewOpenSpace(2, -4)
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)
}

func TestCleanNames(t *testing.T) {
	got := domain.CleanNames([]string{"  Ana ", "", "   ", "Ben", "\t"})

	assert.Equal(t, []string{"Ana", "Ben"}, got)
}

func TestSeatRandomly_SmallGroupSharesTable(t *testing.T) {
	room := newRoom(t, 1, 4)

	unseated := room.SeatRandomly([]string{"A", "B"}, seeded(1))

	assert.Empty(t, unseated)
	table := room.Tables()[0]
	assert.Equal(t, 2, table.Occupancy())
	got := seatedNames(room)
	sort.Strings(got)
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestSeatRandomly_SingleSeatTablesIsolateByCapacity(t *testing.T) {
	room := newRoom(t, 2, 1)

	unseated := room.SeatRandomly([]string{"A", "B"}, seeded(2))

	assert.Empty(t, unseated)
	for _, table := range room.Tables() {
		assert.Equal(t, 1, table.Occupancy())
	}
	got := seatedNames(room)
	sort.Strings(got)
	assert.Equal(t, []string{"A", "B"}, got)
}

// Single-seat tables still take the last person after others are seated.
func TestSeatRandomly_LastPersonTakesSingleSeatTable(t *testing.T) {
	room := newRoom(t, 3, 1)
	tables := room.Tables()
	require.NoError(t, tables[0].Assign("X"))

	unseated := room.SeatRandomly([]string{"A"}, inOrder{})

	assert.Empty(t, unseated)
	assert.Equal(t, "Table 1: [X]\nTable 2: [A]\nTable 3: [-]", room.FormattedLayout())
}

// With larger tables the same situation leaves the last person unseated.
func TestSeatRandomly_LastPersonSkipsEmptyLargerTable(t *testing.T) {
	room := newRoom(t, 2, 2)
	tables := room.Tables()
	require.NoError(t, tables[0].Assign("X"))
	require.NoError(t, tables[0].Assign("Y"))

	unseated := room.SeatRandomly([]string{"A"}, inOrder{})

	assert.Equal(t, []string{"A"}, unseated)
	assert.Equal(t, "Table 1: [X, Y]\nTable 2: [-, -]", room.FormattedLayout())
	assert.Equal(t, domain.ReasonIsolated, room.UnseatedReason())
}

func TestSeatRandomly_OverCapacity(t *testing.T) {
	room := newRoom(t, 6, 4)

	unseated := room.SeatRandomly(names(25), seeded(3))

	assert.Len(t, unseated, 1)
	assert.Len(t, seatedNames(room), 24)
	assert.Equal(t, 0, room.LeftCapacity())
	for _, table := range room.Tables() {
		assert.GreaterOrEqual(t, table.LeftCapacity(), 0)
	}
	assert.Equal(t, domain.ReasonNoCapacity, room.UnseatedReason())
}

func TestSeatRandomly_BlankNamesIgnored(t *testing.T) {
	room := newRoom(t, 6, 4)
	input := []string{" ", "Ana", "", "Ben ", "\t", " Cleo"}

	unseated := room.SeatRandomly(input, seeded(4))

	all := append(seatedNames(room), unseated...)
	sort.Strings(all)
	assert.Equal(t, []string{"Ana", "Ben", "Cleo"}, all)
	for _, n := range all {
		assert.NotEmpty(t, n)
	}
}

// A lone first arrival is seated even though only empty tables are free.
func TestSeatRandomly_LoneFirstArrivalSeated(t *testing.T) {
	room := newRoom(t, 1, 4)

	unseated := room.SeatRandomly([]string{"A"}, seeded(5))

	assert.Empty(t, unseated)
	assert.Equal(t, []string{"A", "-", "-", "-"}, room.Tables()[0].Render())
}

// The last person is not sent alone to a new table once others are seated.
func TestSeatRandomly_LastPersonNotIsolated(t *testing.T) {
	room := newRoom(t, 2, 4)

	unseated := room.SeatRandomly([]string{"A", "B", "C", "D", "E"}, inOrder{})

	assert.Equal(t, []string{"E"}, unseated)
	assert.Equal(t, "Table 1: [A, B, C, D]\nTable 2: [-, -, -, -]", room.FormattedLayout())
	assert.Equal(t, domain.ReasonIsolated, room.UnseatedReason())
}

func TestSeatRandomly_OpensNewTableForPairs(t *testing.T) {
	room := newRoom(t, 3, 4)

	unseated := room.SeatRandomly([]string{"A", "B", "C", "D", "E", "F"}, inOrder{})

	assert.Empty(t, unseated)
	assert.Equal(t, "Table 1: [A, B, C, D]\nTable 2: [E, F, -, -]\nTable 3: [-, -, -, -]", room.FormattedLayout())
}

func TestSeatRandomly_PrefersSmallestPositiveOccupancy(t *testing.T) {
	room := newRoom(t, 4, 4)
	tables := room.Tables()
	require.NoError(t, tables[0].Assign("X1"))
	require.NoError(t, tables[0].Assign("X2"))
	require.NoError(t, tables[1].Assign("Y1"))
	require.NoError(t, tables[2].Assign("Z1"))

	unseated := room.SeatRandomly([]string{"N"}, inOrder{})

	assert.Empty(t, unseated)
	assert.Equal(t, []string{"Y1", "N", "-", "-"}, tables[1].Render(), "first table with the smallest occupancy wins")
	assert.Equal(t, []string{"Z1", "-", "-", "-"}, tables[2].Render())
	assert.Equal(t, 0, tables[3].Occupancy())
}

func TestSeatRandomly_NoNames(t *testing.T) {
	room := newRoom(t, 6, 4)

	unseated := room.SeatRandomly(nil, seeded(6))

	assert.Empty(t, unseated)
	assert.Equal(t, 24, room.LeftCapacity())
}

func TestSeatRandomly_ZeroCapacity(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {3, 0}} {
		room := newRoom(t, dims[0], dims[1])

		unseated := room.SeatRandomly([]string{"A", "B", "C"}, seeded(7))

		assert.ElementsMatch(t, []string{"A", "B", "C"}, unseated)
		assert.Equal(t, 0, room.Capacity())
	}
}

func TestSeatRandomly_EveryNameAccountedFor(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		rng := seeded(seed)
		tables := rng.IntN(7)
		seats := rng.IntN(6)
		input := names(rng.IntN(40))
		room := newRoom(t, tables, seats)

		unseated := room.SeatRandomly(input, rng)

		seated := seatedNames(room)
		assert.Equal(t, len(input), len(seated)+len(unseated), "seed %d", seed)
		assert.ElementsMatch(t, input, append(seated, unseated...), "seed %d", seed)
		assert.Equal(t, room.Capacity()-len(seated), room.LeftCapacity(), "seed %d", seed)

		if len(input) <= room.Capacity() {
			assert.LessOrEqual(t, len(unseated), 1, "seed %d", seed)
		}
	}
}

func TestSeatRandomly_SeatedCountIndependentOfShuffle(t *testing.T) {
	input := names(13)
	want := -1
	for seed := uint64(0); seed < 50; seed++ {
		room := newRoom(t, 6, 4)
		unseated := room.SeatRandomly(input, seeded(seed))

		if want < 0 {
			want = len(unseated)
		}
		assert.Equal(t, want, len(unseated), "seed %d", seed)
	}
}

func TestFormattedLayout_Idempotent(t *testing.T) {
	room := newRoom(t, 3, 2)
	room.SeatRandomly(names(4), seeded(8))

	first := room.FormattedLayout()

	assert.Equal(t, first, room.FormattedLayout())
	assert.Len(t, room.Tables(), 3)
}

func TestOpenSpace_String(t *testing.T) {
	room := newRoom(t, 2, 2)
	room.SeatRandomly([]string{"A", "B"}, inOrder{})

	assert.Equal(t, "OpenSpace(tables=2, capacity=4, left=2)\nTable(capacity=2, left=0) [A, B]\nTable(capacity=2, left=2) [-, -]", room.String())
	assert.Equal(t, "OpenSpace(tables=0, capacity=0, left=0)", newRoom(t, 0, 4).String())
}

func TestSnapshot_JSON(t *testing.T) {
	room := newRoom(t, 3, 2)
	room.SeatRandomly([]string{"A", "B", "C", "D"}, inOrder{})

	data, err := json.Marshal(room.Snapshot())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"table_count": 3,
		"capacity": 6,
		"left_capacity": 2,
		"tables": [
			{"capacity": 2, "left_capacity": 0, "seats": ["A", "B"]},
			{"capacity": 2, "left_capacity": 0, "seats": ["C", "D"]},
			{"capacity": 2, "left_capacity": 2, "seats": [null, null]}
		]
	}`, string(data))
	assert.Equal(t, 4, room.Snapshot().Seated())
}

func TestNewArrangement(t *testing.T) {
	room := newRoom(t, 1, 2)
	room.SeatRandomly([]string{"A"}, inOrder{})
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	a := domain.NewArrangement(room, nil, now)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, now.UTC(), a.CreatedAt)
	assert.Equal(t, []string{}, a.Unseated)
	assert.Equal(t, 1, a.Seated())

	data, err := json.Marshal(a)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"id", "created_at", "tables", "capacity", "left_capacity", "unseated"} {
		assert.Contains(t, decoded, key)
	}
}
