package jira

import (
	"encoding/json"
	"strings"
)

// PlainTextToADF converts plain text to Jira's ADF (Atlassian Document
// Format). The v3 comment endpoint rejects bare strings.
func PlainTextToADF(text string) json.RawMessage {
	if text == "" {
		return nil
	}

	paragraphs := strings.Split(text, "\n")
	var content []interface{}
	for _, para := range paragraphs {
		if para == "" {
			content = append(content, map[string]interface{}{
				"type":    "paragraph",
				"content": []interface{}{},
			})
			continue
		}
		content = append(content, map[string]interface{}{
			"type": "paragraph",
			"content": []interface{}{
				map[string]interface{}{
					"type": "text",
					"text": para,
				},
			},
		})
	}

	doc := map[string]interface{}{
		"type":    "doc",
		"version": 1,
		"content": content,
	}

	data, _ := json.Marshal(doc)
	return data
}
