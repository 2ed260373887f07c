package domain

import "strings"

// AttachmentSeparator joins multiple attachment URLs into the single stored
// string. Fixed 3-character delimiter from the legacy sheet format.
const AttachmentSeparator = "|||"

// EmptyAttachments is stored when a record has no attachments.
const EmptyAttachments = "-"

// AttachmentResult is the per-file outcome of a batch upload. A failed file
// keeps the batch going; its Error is reported back to the caller instead of
// being silently dropped.
type AttachmentResult struct {
	Field    string `json:"field"`
	FileName string `json:"fileName"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// URLs returns the public URLs of the successful uploads, in order.
func URLs(results []AttachmentResult) []string {
	urls := make([]string, 0, len(results))
	for _, r := range results {
		if r.URL != "" {
			urls = append(urls, r.URL)
		}
	}
	return urls
}

// JoinURLs renders the stored attachment string for a list of URLs.
func JoinURLs(urls []string) string {
	if len(urls) == 0 {
		return EmptyAttachments
	}
	return strings.Join(urls, AttachmentSeparator)
}

// SplitURLs is the inverse of JoinURLs.
func SplitURLs(joined string) []string {
	if joined == "" || joined == EmptyAttachments {
		return nil
	}
	return strings.Split(joined, AttachmentSeparator)
}
