package headerscan

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFixtureHeader(t *testing.T) {
	consts, err := ScanFile(filepath.Join("testdata", "pwquality.h"), "PWQ_")
	require.NoError(t, err)

	assert.Equal(t, -10, consts["PWQ_ERROR_MEM_ALLOC"])
	assert.Equal(t, -5, consts["PWQ_ERROR_UNKNOWN_SETTING"])
	assert.Equal(t, -32, consts["PWQ_ERROR_USER_SUBSTR"])
	assert.Equal(t, 256, consts["PWQ_MAX_ERROR_MESSAGE_LEN"])
	assert.Equal(t, 3, consts["PWQ_SETTING_MIN_LENGTH"])

	// the include guard is valueless and must not leak through
	assert.NotContains(t, consts, "PWQUALITY_H")
}

func TestScanSkipsCommentsAndConditionals(t *testing.T) {
	header := `
/* a block comment mentioning
   #define PWQ_FAKE_IN_COMMENT 99
   across lines */
// #define PWQ_FAKE_IN_LINE_COMMENT 98
#ifdef __cplusplus
extern "C" {
#endif
#define PWQ_GUARD
#define PWQ_FUNC(x) ((x) + 1)
#define PWQ_STRINGY "not a number"
#define PWQ_REAL 7 /* trailing comment */
#define PWQ_NEGATIVE -42
#ifdef __cplusplus
}
#endif
`
	consts, err := Scan(strings.NewReader(header), "PWQ_")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"PWQ_REAL":     7,
		"PWQ_NEGATIVE": -42,
	}, consts)
}

func TestScanRespectsPrefix(t *testing.T) {
	header := `
#define OTHER_CONSTANT 1
#define PWQ_ONE 2
`
	consts, err := Scan(strings.NewReader(header), "PWQ_")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"PWQ_ONE": 2}, consts)
}

func TestScanFailsLoudlyWithoutDefines(t *testing.T) {
	_, err := Scan(strings.NewReader("int main(void);\n"), "PWQ_")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no PWQ_* defines")
}

func TestScanFileMissing(t *testing.T) {
	_, err := ScanFile(filepath.Join("testdata", "no-such-header.h"), "PWQ_")
	require.Error(t, err)
}
