package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scribe/cmd/scribe/commands"
	"go.trai.ch/scribe/internal/build"
)

type mockApp struct {
	checkFunc func(ctx context.Context, configPath string, out io.Writer) error
}

func (m *mockApp) Check(ctx context.Context, configPath string, out io.Writer) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, configPath, out)
	}
	return nil
}

func TestCommands_Check(t *testing.T) {
	t.Run("uses default config path", func(t *testing.T) {
		var capturedPath string
		called := false

		mock := &mockApp{
			checkFunc: func(_ context.Context, configPath string, _ io.Writer) error {
				capturedPath = configPath
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "scribe.yaml", capturedPath)
	})

	t.Run("wires the config flag", func(t *testing.T) {
		var capturedPath string

		mock := &mockApp{
			checkFunc: func(_ context.Context, configPath string, _ io.Writer) error {
				capturedPath = configPath
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check", "--config", "custom/scribe.yaml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "custom/scribe.yaml", capturedPath)
	})

	t.Run("writes the summary to stdout", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ string, out io.Writer) error {
				_, err := io.WriteString(out, "templates: 2 file(s)\n")
				return err
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"check"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out.String(), "templates: 2 file(s)")
	})

	t.Run("returns error on check failure", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ string, _ io.Writer) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
