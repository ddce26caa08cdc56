package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirm prompts on stdout and reads one line from stdin. A read error or
// an empty answer yields the default.
func Confirm(message string, defaultYes bool) bool {
	prompt := message
	if defaultYes {
		prompt += " (Y/n): "
	} else {
		prompt += " (y/N): "
	}

	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}
	return confirmResponse(response, defaultYes)
}

func confirmResponse(response string, defaultYes bool) bool {
	response = strings.TrimSpace(strings.ToLower(response))
	if response == "" {
		return defaultYes
	}
	return response == "y" || response == "yes"
}
