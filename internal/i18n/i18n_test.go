package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/writerai/backend/internal/i18n"
)

func TestResolve(t *testing.T) {
	require.NoError(t, i18n.Load())

	t.Run("nested key resolves in both languages", func(t *testing.T) {
		en := i18n.Resolve(i18n.LangEN, "dashboard.title", nil)
		ar := i18n.Resolve(i18n.LangAR, "dashboard.title", nil)
		require.Equal(t, "Dashboard", en)
		require.NotEqual(t, "dashboard.title", ar)
		require.NotEmpty(t, ar)
	})

	t.Run("missing key fails open to the key itself", func(t *testing.T) {
		require.Equal(t, "no.such.key", i18n.Resolve(i18n.LangEN, "no.such.key", nil))
		require.Equal(t, "dashboard.missing", i18n.Resolve(i18n.LangAR, "dashboard.missing", nil))
	})

	t.Run("traversal through a string leaf fails open", func(t *testing.T) {
		// dashboard.title is a leaf; going deeper must return the key.
		require.Equal(t, "dashboard.title.deeper", i18n.Resolve(i18n.LangEN, "dashboard.title.deeper", nil))
	})

	t.Run("key resolving to a subtree fails open", func(t *testing.T) {
		require.Equal(t, "dashboard", i18n.Resolve(i18n.LangEN, "dashboard", nil))
	})

	t.Run("unknown language fails open", func(t *testing.T) {
		require.Equal(t, "dashboard.title", i18n.Resolve("fr", "dashboard.title", nil))
	})

	t.Run("params substituted globally", func(t *testing.T) {
		got := i18n.Resolve(i18n.LangEN, "dashboard.welcome", map[string]any{"name": "Sara"})
		require.Equal(t, "Welcome back, Sara", got)
	})

	t.Run("numeric params stringified", func(t *testing.T) {
		got := i18n.Resolve(i18n.LangEN, "dashboard.words_used", map[string]any{"count": 1200})
		require.Equal(t, "1200 words used this month", got)
	})

	t.Run("unresolved placeholders stay literal", func(t *testing.T) {
		got := i18n.Resolve(i18n.LangEN, "dashboard.welcome", map[string]any{"other": "x"})
		require.Equal(t, "Welcome back, {name}", got)
	})

	t.Run("extra params are ignored", func(t *testing.T) {
		got := i18n.Resolve(i18n.LangEN, "dashboard.title", map[string]any{"name": "x"})
		require.Equal(t, "Dashboard", got)
	})
}

func TestDirection(t *testing.T) {
	require.True(t, i18n.IsRTL(i18n.LangAR))
	require.False(t, i18n.IsRTL(i18n.LangEN))
	require.Equal(t, "rtl", i18n.Direction(i18n.LangAR))
	require.Equal(t, "ltr", i18n.Direction(i18n.LangEN))
	require.Equal(t, "ltr", i18n.Direction("de"))
}

func TestSupported(t *testing.T) {
	require.True(t, i18n.Supported("en"))
	require.True(t, i18n.Supported("ar"))
	require.False(t, i18n.Supported("ru"))
	require.False(t, i18n.Supported(""))
}

func TestTable(t *testing.T) {
	require.NoError(t, i18n.Load())

	t.Run("returns a detached copy", func(t *testing.T) {
		table := i18n.Table(i18n.LangEN)
		require.NotEmpty(t, table)
		dash, ok := table["dashboard"].(map[string]any)
		require.True(t, ok)
		dash["title"] = "mutated"
		require.Equal(t, "Dashboard", i18n.Resolve(i18n.LangEN, "dashboard.title", nil))
	})

	t.Run("unknown language yields empty table", func(t *testing.T) {
		require.Empty(t, i18n.Table("fr"))
	})
}
