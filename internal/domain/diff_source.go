package domain

import (
	"bufio"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// DiffSource is the uploaded material a patch is built from.
type DiffSource struct {
	Subject       string
	CommitMessage string
	Raw           string
}

var patchPrefix = regexp.MustCompile(`^\[PATCH[^\]]*\]\s*`)

// ParseDiffSource reads a `git format-patch` text and extracts the subject and the
// commit message body. Texts without mail headers are returned with only Raw set.
func ParseDiffSource(raw string) (DiffSource, error) {
	src := DiffSource{Raw: raw}

	text := raw
	if strings.HasPrefix(text, "From ") {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[i+1:]
		}
	}
	if !strings.HasPrefix(text, "From:") && !strings.HasPrefix(text, "Subject:") && !strings.HasPrefix(text, "Date:") {
		return src, nil
	}

	msg, err := mail.ReadMessage(strings.NewReader(text))
	if err != nil {
		return src, fmt.Errorf("failed to parse patch headers: %w", err)
	}

	src.Subject = patchPrefix.ReplaceAllString(msg.Header.Get("Subject"), "")

	var body []string
	scanner := bufio.NewScanner(msg.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), len(raw)+1)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "---" {
			break
		}
		body = append(body, line)
	}
	if err := scanner.Err(); err != nil {
		return src, fmt.Errorf("failed to read patch body: %w", err)
	}
	src.CommitMessage = strings.TrimSpace(strings.Join(body, "\n"))

	return src, nil
}
