package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mouse-blink/gorep/internal/config"
	"github.com/mouse-blink/gorep/internal/domain"
	mockDomain "github.com/mouse-blink/gorep/internal/domain/mocks"
	m "github.com/mouse-blink/gorep/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stubWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := newWorkflow
	newWorkflow = func(*cobra.Command, config.Config, *log.Logger) domain.Workflow {
		return wf
	}

	t.Cleanup(func() {
		newWorkflow = original
		configFileFlag = ""
	})
}

func runRoot(args ...string) (string, string, error) {
	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Arity(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "pattern only", args: []string{"apple"}},
		{name: "missing output", args: []string{"apple", "./data"}},
		{name: "extra argument", args: []string{"apple", "./data", "out.txt", "more"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubWorkflow(t, mockDomain.NewMockWorkflow(t))

			_, _, err := runRoot(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "accepts 3 arg(s)")
		})
	}
}

func TestRootCmd_PassesArguments(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		wf := mockDomain.NewMockWorkflow(t)
		wf.EXPECT().Process(domain.ProcessArgs{
			Pattern:     "apple",
			Root:        m.Path("./data"),
			Output:      m.Path("out.txt"),
			Syntax:      m.SyntaxRE2,
			OnFileError: m.PolicySkip,
		}).Return(m.Summary{}, nil)
		stubWorkflow(t, wf)

		_, _, err := runRoot("apple", "./data", "out.txt")
		require.NoError(t, err)
	})

	t.Run("flags", func(t *testing.T) {
		wf := mockDomain.NewMockWorkflow(t)
		wf.EXPECT().Process(mock.MatchedBy(func(args domain.ProcessArgs) bool {
			return args.Syntax == m.SyntaxPerl &&
				args.OnFileError == m.PolicyAbort &&
				args.Quiet
		})).Return(m.Summary{}, nil)
		stubWorkflow(t, wf)

		_, _, err := runRoot("--syntax", "perl", "--on-file-error", "abort", "-q", "apple", "./data", "out.txt")
		require.NoError(t, err)
	})

	t.Run("pattern starting with a dash", func(t *testing.T) {
		wf := mockDomain.NewMockWorkflow(t)
		wf.EXPECT().Process(mock.MatchedBy(func(args domain.ProcessArgs) bool {
			return args.Pattern == "-v[0-9]+"
		})).Return(m.Summary{}, nil)
		stubWorkflow(t, wf)

		_, _, err := runRoot("--", "-v[0-9]+", "./data", "out.txt")
		require.NoError(t, err)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("GOREP_ON_FILE_ERROR", "abort")

		wf := mockDomain.NewMockWorkflow(t)
		wf.EXPECT().Process(mock.MatchedBy(func(args domain.ProcessArgs) bool {
			return args.OnFileError == m.PolicyAbort
		})).Return(m.Summary{}, nil)
		stubWorkflow(t, wf)

		_, _, err := runRoot("apple", "./data", "out.txt")
		require.NoError(t, err)
	})
}

func TestRootCmd_Errors(t *testing.T) {
	t.Run("invalid flag value is rejected before processing", func(t *testing.T) {
		stubWorkflow(t, mockDomain.NewMockWorkflow(t))

		_, _, err := runRoot("--on-file-error", "retry", "apple", "./data", "out.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("missing config file", func(t *testing.T) {
		stubWorkflow(t, mockDomain.NewMockWorkflow(t))

		_, _, err := runRoot("--config", filepath.Join(t.TempDir(), "absent.yaml"), "apple", "./data", "out.txt")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("workflow error is returned", func(t *testing.T) {
		boom := errors.New("boom")

		wf := mockDomain.NewMockWorkflow(t)
		wf.EXPECT().Process(mock.Anything).Return(m.Summary{}, boom)
		stubWorkflow(t, wf)

		_, _, err := runRoot("apple", "./data", "out.txt")
		assert.ErrorIs(t, err, boom)
	})
}

func TestRootCmd_EndToEnd(t *testing.T) {
	t.Cleanup(func() { configFileFlag = "" })

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f1.txt"), []byte("apple\nbanana\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "f2.txt"), []byte("grape\npineapple\n"), 0o644))

	out := filepath.Join(t.TempDir(), "nested", "result.txt")

	stdout, _, err := runRoot("-q", "--log-level", "error", "apple", root, out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "apple\npineapple\n", string(data))

	t.Run("summary table without quiet", func(t *testing.T) {
		stdout, _, err := runRoot("--log-level", "error", "apple", root, out)
		require.NoError(t, err)
		assert.Contains(t, stdout, "f1.txt")
		assert.Contains(t, stdout, "Wrote 2 matched lines")
	})

	t.Run("invalid pattern leaves no output", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "never.txt")

		_, _, err := runRoot("(unclosed", root, missing)
		require.ErrorIs(t, err, domain.ErrInvalidPattern)

		_, statErr := os.Stat(missing)
		assert.True(t, os.IsNotExist(statErr))
	})
}
