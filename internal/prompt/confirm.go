package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type Confirmer struct {
	In            io.Reader
	Out           io.Writer
	IsInteractive func() bool
}

func DefaultConfirmer() Confirmer {
	return Confirmer{
		In:  os.Stdin,
		Out: os.Stdout,
		IsInteractive: func() bool {
			info, err := os.Stdin.Stat()
			if err != nil {
				return false
			}
			return (info.Mode() & os.ModeCharDevice) != 0
		},
	}
}

// ConfirmClear asks before wiping the translation history. force skips the
// prompt; non-interactive stdin without force is refused rather than assumed.
func (c Confirmer) ConfirmClear(count int, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if c.IsInteractive == nil || !c.IsInteractive() {
		return false, fmt.Errorf("non-interactive stdin: use -y to clear history")
	}
	if c.Out != nil {
		fmt.Fprintf(c.Out, "Delete all %d history records? (y/n): ", count)
	}
	reader := bufio.NewReader(c.In)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y", nil
}
