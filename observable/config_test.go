package observable

import (
	"testing"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestInvalidConfiguration(t *testing.T) {
	_, err := New[string](nil, WithReplacementPolicy(ReplacementPolicy(7)))
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = New[string](nil, WithCapacity(-1))
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	require.Panics(t, func() {
		MustNew[string](nil, WithReplacementPolicy(ReplacementPolicy(7)))
	})
}

func TestParseReplacementPolicy(t *testing.T) {
	p, err := ParseReplacementPolicy("fifo")
	require.Nil(t, err)
	require.Equal(t, FIFO, p)
	p, err = ParseReplacementPolicy(" LIFO ")
	require.Nil(t, err)
	require.Equal(t, LIFO, p)
	_, err = ParseReplacementPolicy("random")
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.Equal(t, "ReplacementPolicy(7)", ReplacementPolicy(7).String())
}

func TestConfigFromJSON(t *testing.T) {
	var cfg Config
	err := json.Unmarshal([]byte(`{"capacity":2,"replacement_policy":"LIFO","free_unused_resources":true}`), &cfg)
	require.Nil(t, err)
	require.Equal(t, Config{Capacity: 2, ReplacementPolicy: LIFO, FreeUnusedResources: true}, cfg)

	s, err := New([]string{"a", "b", "c"}, WithConfig(cfg))
	require.Nil(t, err)
	require.Equal(t, 2, s.Capacity())
	require.Equal(t, LIFO, s.ReplacementPolicy())
	require.Equal(t, []string{"a", "c"}, sorted(s.Values()))

	data, err := json.Marshal(cfg)
	require.Nil(t, err)
	require.JSONEq(t, `{"capacity":2,"replacement_policy":"LIFO","free_unused_resources":true}`, string(data))

	err = json.Unmarshal([]byte(`{"replacement_policy":"MRU"}`), &cfg)
	require.Error(t, err)
}

func TestEvictionIsLogged(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	s := MustNew[string](nil, WithCapacity(1), WithLogger(log.NewEntry(logger)))
	hook.Reset()

	s.Add("aa")
	s.Add("bb")
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "evicting value", entry.Message)
	require.Equal(t, "aa", entry.Data["victim"])
	require.Equal(t, FIFO, entry.Data["policy"])
}
