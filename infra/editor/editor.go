// Package editor lets the player draft a long action in their own editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// commentPrefix marks guidance lines in the draft file; they never reach the
// input line.
const commentPrefix = "#"

const instructionComment = `# dungeonterm: write your next action below this header.
# Save and quit to load it into the input line. Nothing is sent until you
# press enter in the game. Lines starting with '#' are ignored and line
# breaks become spaces.
`

// EnvEditor builds the command for the player's editor, taken from $VISUAL,
// then $EDITOR, then vi. Running it is the caller's job: the TUI hands the
// command to tea.ExecProcess so the terminal is released while it runs.
type EnvEditor struct{}

func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

func editorArgv() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if argv := strings.Fields(os.Getenv(env)); len(argv) > 0 {
			return argv
		}
	}
	return []string{"vi"}
}

// Cmd seeds a draft file with the header and the current input, and returns
// the editor command opened on it along with the file's path.
func (e *EnvEditor) Cmd(draft string) (*exec.Cmd, string, error) {
	f, err := os.CreateTemp("", "dungeonterm-action-*.txt")
	if err != nil {
		return nil, "", fmt.Errorf("creating draft file: %w", err)
	}
	path := f.Name()
	_, werr := f.WriteString(instructionComment + draft)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(path)
		return nil, "", fmt.Errorf("seeding draft file: %w", werr)
	}

	argv := append(editorArgv(), path)
	return exec.Command(argv[0], argv[1:]...), path, nil
}

// ReadContent consumes the draft file at path. Header lines are dropped and
// what remains is folded into one line, since the input is a single line.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading draft file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), commentPrefix) {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	return strings.Join(words, " "), nil
}
