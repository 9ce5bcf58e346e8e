package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCmd_HasSubcommands(t *testing.T) {
	commands := memoryCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "save")
	assert.Contains(t, commandNames, "search")
}

func TestMemorySaveCmd_PrintsMemoryID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"memory", "save", "Prefers email over calls.", "--contact", "alice"})
	defer func() {
		rootCmd.SetArgs(nil)
		memoryContact = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Memory mem-1 saved for contact alice.")
}

func TestMemorySaveCmd_RequiresContact(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"memory", "save", "something"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--contact is required")
}

func TestMemorySearchCmd_PrintsResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"memory", "search", "communication", "--contact", "alice"})
	defer func() {
		rootCmd.SetArgs(nil)
		memoryContact = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Memories for alice:")
	assert.Contains(t, buf.String(), "Prefers email over calls.")
	assert.Contains(t, buf.String(), "(preference)")
}

func TestMemorySearchCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	memoryService = &fakeMemoryService{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"memory", "search", "anything", "--contact", "bob"})
	defer func() {
		rootCmd.SetArgs(nil)
		memoryContact = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No memories found.")
}
