package domain

import (
	"encoding/base64"
	"fmt"
	"net/url"
)

type Role string

const (
	MessageRoleSystem    Role = "system"
	MessageRoleUser      Role = "user"
	MessageRoleAssistant Role = "assistant"
)

type Message struct {
	Role  Role
	Parts []ContentPart
}

// UserMessage builds a user message from the given parts, keeping their order.
func UserMessage(parts ...ContentPart) Message {
	return Message{Role: MessageRoleUser, Parts: parts}
}

type ContentPartType string

const (
	ContentPartTypeText  ContentPartType = "text"
	ContentPartTypeImage ContentPartType = "image"
)

// ContentPart is one unit of a message. Image parts carry either a remote
// URL or inline bytes, never both.
type ContentPart struct {
	Type      ContentPartType
	Text      string
	ImageURL  *url.URL
	ImageData []byte
	MIMEType  string
}

func TextPart(text string) ContentPart {
	return ContentPart{Type: ContentPartTypeText, Text: text}
}

func ImageURLPart(u *url.URL) ContentPart {
	return ContentPart{Type: ContentPartTypeImage, ImageURL: u}
}

// ImageDataPart embeds raw image bytes. An empty mimeType defaults to image/jpeg.
func ImageDataPart(data []byte, mimeType string) ContentPart {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return ContentPart{Type: ContentPartTypeImage, ImageData: data, MIMEType: mimeType}
}

// ImageReference returns the URL the provider should fetch the image from.
// Inline data is encoded as a data URL.
func (p ContentPart) ImageReference() (string, error) {
	if p.Type != ContentPartTypeImage {
		return "", fmt.Errorf("content part of type %q is not an image", p.Type)
	}
	switch {
	case p.ImageURL != nil:
		return p.ImageURL.String(), nil
	case len(p.ImageData) > 0:
		return "data:" + p.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(p.ImageData), nil
	default:
		return "", fmt.Errorf("image part has neither URL nor data")
	}
}
