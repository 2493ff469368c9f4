package resume

import (
	"strings"
	"testing"
)

func TestRenderPreviewEscapesUserContent(t *testing.T) {
	doc := EmptyDocument()
	doc.PersonalInfo.FullName = "<script>alert(1)</script>"
	doc.Summary = "Engineer & builder"

	html, err := RenderPreview(doc)
	if err != nil {
		t.Fatalf("RenderPreview: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("expected user content to be escaped")
	}
	if !strings.Contains(html, "Engineer &amp; builder") {
		t.Fatalf("expected escaped summary in output")
	}
}

func TestRenderPreviewOmitsEmptySections(t *testing.T) {
	html, err := RenderPreview(EmptyDocument())
	if err != nil {
		t.Fatalf("RenderPreview: %v", err)
	}
	if strings.Contains(html, "Work Experience") {
		t.Fatalf("expected empty experience section omitted")
	}
	if !strings.Contains(html, "YOUR NAME") {
		t.Fatalf("expected placeholder name")
	}
}
