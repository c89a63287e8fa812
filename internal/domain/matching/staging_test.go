package matching

import (
	"testing"

	"grad-match/internal/domain/posting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredSeq(scores ...int) []posting.Scored {
	out := make([]posting.Scored, 0, len(scores))
	for i, s := range scores {
		out = append(out, posting.Scored{Posting: posting.Posting{ID: i + 1}, AffinityScore: s})
	}
	return out
}

func TestStagers_AreIdentityTransforms(t *testing.T) {
	for _, seq := range [][]posting.Scored{
		nil,
		scoredSeq(10),
		scoredSeq(90, 90, 50, 40, 40, 40, 1),
	} {
		assert.Equal(t, len(seq), len(StackStager{}.Stage(seq)))
		if len(seq) == 0 {
			assert.Empty(t, StackStager{}.Stage(seq))
			assert.Empty(t, QueueStager{}.Stage(seq))
			continue
		}
		assert.Equal(t, seq, StackStager{}.Stage(seq))
		assert.Equal(t, seq, QueueStager{}.Stage(seq))
	}
}

func TestNewStager(t *testing.T) {
	s, err := NewStager("")
	require.NoError(t, err)
	assert.Equal(t, StagingStack, s.Name())

	s, err = NewStager(" Queue ")
	require.NoError(t, err)
	assert.Equal(t, StagingQueue, s.Name())

	_, err = NewStager("heap")
	assert.ErrorIs(t, err, ErrUnknownStaging)
}
