package sfc

import (
	"strings"
	"testing"
)

func checkAnchor(t *testing.T, doc *Document, b Block) {
	t.Helper()
	end := int(b.Start) + len(b.Text)
	if end > len(doc.Text) {
		t.Fatalf("block end %d beyond document length %d", end, len(doc.Text))
	}
	if got := doc.Text[b.Start:end]; got != b.Text {
		t.Fatalf("anchor mismatch: original[%d:%d] = %q, block = %q", b.Start, end, got, b.Text)
	}
}

func TestExtractFindsBothBlocks(t *testing.T) {
	text := "<template>\n  <div>{{ msg }}</div>\n</template>\n\n<script setup lang=\"ts\">\nconst msg = 'hi'\n</script>\n"
	doc, err := Extract("App.vue", text)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if !doc.Template.Present || doc.Template.Text != "\n  <div>{{ msg }}</div>\n" {
		t.Fatalf("template = %+v", doc.Template)
	}
	if int(doc.Template.Start) != len("<template>") {
		t.Errorf("template anchor = %d", doc.Template.Start)
	}
	if !doc.Script.Present || doc.Script.Text != "\nconst msg = 'hi'\n" {
		t.Fatalf("script = %+v", doc.Script)
	}
	if want := strings.Index(text, "\nconst"); int(doc.Script.Start) != want {
		t.Errorf("script anchor = %d, want %d", doc.Script.Start, want)
	}
	if got := doc.Script.Lang(); got != "ts" {
		t.Errorf("Lang() = %q, want ts", got)
	}
	checkAnchor(t, doc, doc.Script)
	checkAnchor(t, doc, doc.Template)
}

func TestExtractMissingBlocks(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no tags", "just text"},
		{"unterminated open tag", "<script lang=\"ts\""},
		{"missing close tag", "<script>const a = 1"},
		{"close tag before open", "</script><script>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Extract("x.vue", tt.text)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if doc.Script.Present || doc.Script.Start != 0 || doc.Script.Text != "" {
				t.Fatalf("expected absent script, got %+v", doc.Script)
			}
		})
	}
}

func TestExtractEmptyButPresentBlock(t *testing.T) {
	doc, err := Extract("x.vue", "<template></template>")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !doc.Template.Present {
		t.Fatal("empty template must still be present")
	}
	if !doc.Template.Empty() || doc.Template.Start != uint32(len("<template>")) {
		t.Fatalf("template = %+v", doc.Template)
	}
	if doc.Script.Present {
		t.Fatal("script must be absent")
	}
}

func TestExtractIsFirstMatch(t *testing.T) {
	text := "<script>a()</script>\n<script setup>b()</script>"
	doc, err := Extract("x.vue", text)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Script.Text != "a()" {
		t.Fatalf("expected first block only, got %q", doc.Script.Text)
	}
	checkAnchor(t, doc, doc.Script)
}

func TestExtractNestedTemplateStopsAtFirstClose(t *testing.T) {
	text := "<template><template v-if=\"x\">a</template>b</template>"
	doc, err := Extract("x.vue", text)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Template.Text != "<template v-if=\"x\">a" {
		t.Fatalf("template = %q", doc.Template.Text)
	}
}

func TestBlockLang(t *testing.T) {
	tests := []struct {
		open string
		want string
	}{
		{` lang="ts"`, "ts"},
		{` setup lang='TSX'`, "tsx"},
		{` lang=js`, "js"},
		{` setup`, ""},
		{` xlang="ts"`, ""},
	}
	for _, tt := range tests {
		if got := (Block{OpenTag: tt.open}).Lang(); got != tt.want {
			t.Errorf("Lang(%q) = %q, want %q", tt.open, got, tt.want)
		}
	}
}
