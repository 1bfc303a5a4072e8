package parser

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	specialCharRe = regexp.MustCompile(`[^\w\s.,@\-\n]`)

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?\s?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
		regexp.MustCompile(`\+?\d{1,3}[\s.-]?\d{2,4}[\s.-]?\d{2,4}[\s.-]?\d{2,4}`),
	}

	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`github\.com/[\w-]+`)
	websiteRe  = regexp.MustCompile(`https?://(?:www\.)?[\w-]+\.[\w./-]+`)
)

// CleanText normalizes extracted text for section scanning. Runs of spaces
// and tabs collapse to a single space while newlines survive, since section
// detection is line-oriented. Characters outside word, whitespace and basic
// punctuation classes are dropped.
func CleanText(text string) string {
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = specialCharRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ExtractEmail returns the first email address found, or the empty string.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone number found in any supported format.
func ExtractPhone(text string) string {
	for _, re := range phoneRes {
		if match := re.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

// Links holds profile and website URLs found in the document.
type Links struct {
	LinkedIn string
	GitHub   string
	Website  string
}

// ExtractLinks pulls LinkedIn, GitHub and personal website links.
func ExtractLinks(text string) Links {
	var links Links
	if m := linkedinRe.FindString(text); m != "" {
		links.LinkedIn = "https://" + m
	}
	if m := githubRe.FindString(text); m != "" {
		links.GitHub = "https://" + m
	}
	if m := websiteRe.FindString(text); m != "" {
		if !strings.Contains(m, "linkedin") && !strings.Contains(m, "github") {
			links.Website = m
		}
	}
	return links
}
