package namematch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "joao silva", Normalize("  JOÃO   Silva "))
	assert.Equal(t, "conceicao", Normalize("Conceição"))
	assert.Equal(t, "", Normalize("   "))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("JOAO SILVA", "João Silva"))
	assert.Less(t, Similarity("JOAO SILVA", "Maria Souza"), 0.5)
	assert.InDelta(t, 0.909, Similarity("Maria Souza", "Maria Sousa"), 0.001)
	assert.Equal(t, 0.0, Similarity("", "Maria"))
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, Levenshtein([]rune("abc"), []rune("abc")))
	assert.Equal(t, 3, Levenshtein([]rune(""), []rune("abc")))
	assert.Equal(t, 3, Levenshtein([]rune("kitten"), []rune("sitting")))
}

func TestFind(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Name: "Maria Souza"},
		{ID: "2", Name: "João Silva"},
		{ID: "3", Name: "Ana Paula Costa"},
	}

	res := Find("JOAO SILVA", candidates)
	require.NotNil(t, res.Best)
	assert.Equal(t, "2", res.Best.Candidate.ID)
	assert.Equal(t, 1.0, res.Best.Score)
	assert.True(t, res.NeedsDecision)

	res = Find("Ana Paula", candidates)
	require.NotNil(t, res.Best)
	assert.Equal(t, "3", res.Best.Candidate.ID)
	assert.False(t, res.NeedsDecision, "0.6 is below the threshold")

	assert.Nil(t, Find("Ana", nil).Best)
}

func TestRank(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Name: "Maria Souza"},
		{ID: "2", Name: "Maria Sousa"},
		{ID: "3", Name: "Mario Souza"},
	}

	ranked := Rank("maria souza", candidates, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "1", ranked[0].Candidate.ID)
	assert.Equal(t, "2", ranked[1].Candidate.ID, "ties keep input order")
}

func TestNormalize_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "joao silva", Normalize("João Silva"))
		}()
	}
	wg.Wait()
}

func TestDecision_IsValid(t *testing.T) {
	assert.True(t, DecisionChoose.IsValid())
	assert.False(t, Decision("merge").IsValid())
}
