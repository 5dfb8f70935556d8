package categorize_test

import (
	"testing"

	"fjacquet/nubank-analyzer/cmd/categorize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "Categorize a single transaction description")
	assert.Contains(t, categorize.Cmd.Long, "keyword")
	assert.NotNil(t, categorize.Cmd.Run)
}

func TestCategorizeCommand_Flags(t *testing.T) {
	descriptionFlag := categorize.Cmd.Flags().Lookup("description")
	require.NotNil(t, descriptionFlag)
	assert.Equal(t, "d", descriptionFlag.Shorthand)
	assert.Contains(t, descriptionFlag.Usage, "description")
}
