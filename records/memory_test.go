package records_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

func TestMemoryStore_AppendAssignsSequentialIDs(t *testing.T) {
	s := records.NewMemoryStore()

	first, err := s.Append(context.Background(), models.PatientCase{Name: "John Doe"})
	require.NoError(t, err)
	second, err := s.Append(context.Background(), models.PatientCase{Name: "Jane Smith"})
	require.NoError(t, err)

	assert.Equal(t, "P001", first.ID)
	assert.Equal(t, "P002", second.ID)
}

func TestMemoryStore_AppendContinuesAfterSeed(t *testing.T) {
	s := records.NewMemoryStore(records.DemoCases()...)

	c, err := s.Append(context.Background(), models.PatientCase{Name: "Ahmed Hassan"})
	require.NoError(t, err)

	assert.Equal(t, "P004", c.ID)
}

func TestMemoryStore_AllKeepsInsertionOrder(t *testing.T) {
	s := records.NewMemoryStore()
	for _, name := range []string{"Zed", "Amy", "Mo"} {
		_, err := s.Append(context.Background(), models.PatientCase{Name: name})
		require.NoError(t, err)
	}

	all, err := s.All(context.Background())
	require.NoError(t, err)

	require.Len(t, all, 3)
	assert.Equal(t, "Zed", all[0].Name)
	assert.Equal(t, "Amy", all[1].Name)
	assert.Equal(t, "Mo", all[2].Name)
}

func TestMemoryStore_AllReturnsCopy(t *testing.T) {
	s := records.NewMemoryStore(records.DemoCases()...)

	all, err := s.All(context.Background())
	require.NoError(t, err)
	all[0].Name = "changed"

	again, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", again[0].Name)
}

func TestMemoryStore_EmptyAllIsNotNil(t *testing.T) {
	all, err := records.NewMemoryStore().All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMemoryStore_ConcurrentAppendsGetUniqueIDs(t *testing.T) {
	s := records.NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Append(context.Background(), models.PatientCase{Name: "x"})
		}()
	}
	wg.Wait()

	all, err := s.All(context.Background())
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, c := range all {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "P001", records.FormatID(1))
	assert.Equal(t, "P042", records.FormatID(42))
	assert.Equal(t, "P1000", records.FormatID(1000))
}
