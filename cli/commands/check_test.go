package commands

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planguard/planguard/cli/internal/config"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	config.AppFs = afero.NewMemMapFs()
	t.Cleanup(func() { config.AppFs = afero.NewOsFs() })

	require.NoError(t, afero.WriteFile(config.AppFs, "test.plan", []byte(content), 0644))
	return "test.plan"
}

func exitCode(err error) int {
	if err == nil {
		return ExitPass
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return 1
}

func TestCheckSafePlanPasses(t *testing.T) {
	path := writePlan(t, `plan "p" { add-column users.email }`)

	err := runCheck(path, checkOptions{quiet: true})
	assert.Equal(t, ExitPass, exitCode(err))
}

func TestCheckDestructivePlanFails(t *testing.T) {
	path := writePlan(t, `plan "p" { drop-table posts }`)

	err := runCheck(path, checkOptions{quiet: true})
	assert.Equal(t, ExitFail, exitCode(err))
}

func TestCheckDestructivePlanPassesWithBackupConfirmed(t *testing.T) {
	path := writePlan(t, `plan "p" { drop-column users.age }`)

	err := runCheck(path, checkOptions{quiet: true, backupConfirmed: true})
	assert.Equal(t, ExitPass, exitCode(err))
}

func TestCheckUnknownKindIsParseError(t *testing.T) {
	path := writePlan(t, `plan "p" { unknown-op x.y }`)

	err := runCheck(path, checkOptions{quiet: true})
	assert.Equal(t, ExitParseError, exitCode(err))
}

func TestCheckMissingFileIsParseError(t *testing.T) {
	config.AppFs = afero.NewMemMapFs()
	t.Cleanup(func() { config.AppFs = afero.NewOsFs() })

	err := runCheck("does-not-exist.plan", checkOptions{quiet: true})
	assert.Equal(t, ExitParseError, exitCode(err))
}

func TestValidateReportsParseErrors(t *testing.T) {
	path := writePlan(t, `plan "p" { drop-column users }`)

	assert.Equal(t, ExitParseError, exitCode(runValidate(path)))
}

func TestFmtCheckModeFailsOnUnformattedPlan(t *testing.T) {
	path := writePlan(t, `plan "p" {
      drop-table   sessions
}
`)

	err := runFmt(path, 2, true)
	assert.Equal(t, ExitFail, exitCode(err))
}

func TestFmtRewritesPlanCanonically(t *testing.T) {
	path := writePlan(t, `plan "p" {
      drop-table   sessions
}
`)

	require.NoError(t, runFmt(path, 2, false))

	formatted, err := afero.ReadFile(config.AppFs, path)
	require.NoError(t, err)
	assert.Equal(t, "plan \"p\" {\n  drop-table sessions\n}\n", string(formatted))

	// A second run is a no-op.
	require.NoError(t, runFmt(path, 2, true))
}
