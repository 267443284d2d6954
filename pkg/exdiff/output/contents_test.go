package output_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/output"
)

func TestWriteContents(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, output.WriteContents(&buf, sampleWorkbook()))

	snaps.MatchSnapshot(t, buf.String())
}

func TestWriteContentsNoSheets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, output.WriteContents(&buf, models.NewWorkbookData("empty.xlsx")))

	assert.Contains(t, buf.String(), "Content Dump for Excel File: empty.xlsx")
	assert.Contains(t, buf.String(), "No sheets or data found in the file.")
	assert.NotContains(t, buf.String(), "--- Sheet:")
}
