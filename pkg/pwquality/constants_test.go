package pwquality

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abadger/go-pwquality/internal/headerscan"
)

// The committed constants are generated from pwquality.h; this pins them
// against the header fixture so a regenerated or hand-edited file cannot
// drift silently.
func TestConstantsMatchHeader(t *testing.T) {
	header := filepath.Join("..", "..", "internal", "headerscan", "testdata", "pwquality.h")
	scanned, err := headerscan.ScanFile(header, "PWQ_")
	require.NoError(t, err)

	expected := map[string]int{
		"PWQ_ERROR_SUCCESS":           int(CodeSuccess),
		"PWQ_ERROR_FATAL_FAILURE":     int(CodeFatalFailure),
		"PWQ_ERROR_INTEGER":           int(CodeInteger),
		"PWQ_ERROR_CFGFILE_OPEN":      int(CodeCfgfileOpen),
		"PWQ_ERROR_CFGFILE_MALFORMED": int(CodeCfgfileMalformed),
		"PWQ_ERROR_UNKNOWN_SETTING":   int(CodeUnknownSetting),
		"PWQ_ERROR_NON_INT_SETTING":   int(CodeNonIntSetting),
		"PWQ_ERROR_NON_INT_DEFAULT":   int(CodeNonIntDefault),
		"PWQ_ERROR_NON_STR_SETTING":   int(CodeNonStrSetting),
		"PWQ_ERROR_NON_STR_DEFAULT":   int(CodeNonStrDefault),
		"PWQ_ERROR_MEM_ALLOC":         int(CodeMemAlloc),
		"PWQ_ERROR_TOO_SIMILAR":       int(CodeTooSimilar),
		"PWQ_ERROR_MIN_DIGITS":        int(CodeMinDigits),
		"PWQ_ERROR_MIN_UPPERS":        int(CodeMinUppers),
		"PWQ_ERROR_MIN_LOWERS":        int(CodeMinLowers),
		"PWQ_ERROR_MIN_OTHERS":        int(CodeMinOthers),
		"PWQ_ERROR_MIN_LENGTH":        int(CodeMinLength),
		"PWQ_ERROR_PALINDROME":        int(CodePalindrome),
		"PWQ_ERROR_CASE_CHANGES_ONLY": int(CodeCaseChangesOnly),
		"PWQ_ERROR_ROTATED":           int(CodeRotated),
		"PWQ_ERROR_MIN_CLASSES":       int(CodeMinClasses),
		"PWQ_ERROR_MAX_CONSECUTIVE":   int(CodeMaxConsecutive),
		"PWQ_ERROR_EMPTY_PASSWORD":    int(CodeEmptyPassword),
		"PWQ_ERROR_SAME_PASSWORD":     int(CodeSamePassword),
		"PWQ_ERROR_CRACKLIB_CHECK":    int(CodeCracklibCheck),
		"PWQ_ERROR_RNG":               int(CodeRNG),
		"PWQ_ERROR_GENERATION_FAILED": int(CodeGenerationFailed),
		"PWQ_ERROR_USER_CHECK":        int(CodeUserCheck),
		"PWQ_ERROR_GECOS_CHECK":       int(CodeGecosCheck),
		"PWQ_ERROR_MAX_CLASS_REPEAT":  int(CodeMaxClassRepeat),
		"PWQ_ERROR_BAD_WORDS":         int(CodeBadWords),
		"PWQ_ERROR_MAX_SEQUENCE":      int(CodeMaxSequence),
		"PWQ_ERROR_USER_SUBSTR":       int(CodeUserSubstr),

		"PWQ_SETTING_DIFF_OK":          int(SettingDiffOk),
		"PWQ_SETTING_MIN_LENGTH":       int(SettingMinLength),
		"PWQ_SETTING_DIG_CREDIT":       int(SettingDigCredit),
		"PWQ_SETTING_UP_CREDIT":        int(SettingUpCredit),
		"PWQ_SETTING_LOW_CREDIT":       int(SettingLowCredit),
		"PWQ_SETTING_OTH_CREDIT":       int(SettingOthCredit),
		"PWQ_SETTING_MIN_CLASS":        int(SettingMinClass),
		"PWQ_SETTING_MAX_REPEAT":       int(SettingMaxRepeat),
		"PWQ_SETTING_DICT_PATH":        int(SettingDictPath),
		"PWQ_SETTING_MAX_CLASS_REPEAT": int(SettingMaxClassRepeat),
		"PWQ_SETTING_GECOS_CHECK":      int(SettingGecosCheck),
		"PWQ_SETTING_BAD_WORDS":        int(SettingBadWords),
		"PWQ_SETTING_MAX_SEQUENCE":     int(SettingMaxSequence),
		"PWQ_SETTING_DICT_CHECK":       int(SettingDictCheck),
		"PWQ_SETTING_USER_CHECK":       int(SettingUserCheck),
		"PWQ_SETTING_ENFORCING":        int(SettingEnforcing),
		"PWQ_SETTING_RETRY_TIMES":      int(SettingRetryTimes),
		"PWQ_SETTING_ENFORCE_ROOT":     int(SettingEnforceRoot),
		"PWQ_SETTING_LOCAL_USERS":      int(SettingLocalUsers),
		"PWQ_SETTING_USER_SUBSTR":      int(SettingUserSubstr),

		"PWQ_MAX_ENTROPY_BITS":      MaxEntropyBits,
		"PWQ_MIN_ENTROPY_BITS":      MinEntropyBits,
		"PWQ_MAX_ERROR_MESSAGE_LEN": MaxErrorMessageLen,
	}

	assert.Equal(t, expected, scanned)
}
