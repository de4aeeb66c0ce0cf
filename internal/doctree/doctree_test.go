package doctree

import (
	"strings"
	"testing"
)

func TestParseSectionTree(t *testing.T) {
	yamlDoc := `
sections:
  - id: scope
    name: "Область применения"
    subsections:
      - id: scope_general
        name: "Общие сведения"
        points:
          - id: scope_general_p1
            name: "Назначение"
            blocks:
              - "Изделие предназначено для {{product.purpose}}."
              - page_break: true
`
	doc, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}

	sec := doc.Sections[0]
	if sec.ID != "scope" {
		t.Errorf("expected id 'scope', got %s", sec.ID)
	}
	if sec.Kind != KindSection {
		t.Errorf("expected kind section, got %s", sec.Kind)
	}
	if len(sec.Subsections) != 1 {
		t.Fatalf("expected 1 subsection, got %d", len(sec.Subsections))
	}

	point := sec.Subsections[0].Points[0]
	if len(point.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(point.Blocks))
	}
	if point.Blocks[0].Kind() != BlockText {
		t.Errorf("expected first block text, got %s", point.Blocks[0].Kind())
	}
	if point.Blocks[1].Kind() != BlockPageBreak {
		t.Errorf("expected second block page_break, got %s", point.Blocks[1].Kind())
	}
}

func TestBlockUnmarshalForms(t *testing.T) {
	yamlDoc := `
sections:
  - id: s
    name: "Раздел"
    blocks:
      - "обычный текст"
      - text: "текст в отображении"
      - list:
          style: alpha
          items:
            - "первый"
            - text: "второй"
      - table:
          name: "Параметры"
          headers: ["Параметр", "Значение"]
          rows:
            - cells: ["Масса", "1 кг"]
      - image:
          path: "media/view.png"
          caption: "Общий вид"
          width: "10cm"
`
	doc, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}

	blocks := doc.Sections[0].Blocks
	want := []BlockKind{BlockText, BlockText, BlockList, BlockTable, BlockImage}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, k := range want {
		if blocks[i].Kind() != k {
			t.Errorf("block %d: expected kind %s, got %s", i, k, blocks[i].Kind())
		}
	}

	list := blocks[2].List
	if list.Style != "alpha" {
		t.Errorf("expected list style alpha, got %s", list.Style)
	}
	if len(list.Items) != 2 || list.Items[1].Text != "второй" {
		t.Errorf("unexpected list items: %+v", list.Items)
	}

	table := blocks[3].Table
	if table.ColumnCount() != 2 {
		t.Errorf("expected 2 columns, got %d", table.ColumnCount())
	}

	img := blocks[4].Image
	if img.CaptionText() != "Общий вид" {
		t.Errorf("expected caption 'Общий вид', got %s", img.CaptionText())
	}
}

func TestBlockUnknownMappingIsInvalid(t *testing.T) {
	yamlDoc := `
sections:
  - id: s
    name: "Раздел"
    blocks:
      - chart:
          kind: "pie"
`
	doc, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	if doc.Sections[0].Blocks[0].Kind() != BlockInvalid {
		t.Errorf("expected invalid block, got %s", doc.Sections[0].Blocks[0].Kind())
	}

	report := Validate(doc)
	if !containsSubstring(report.Errors, "malformed content block") {
		t.Errorf("expected malformed block error, got %v", report.Errors)
	}
}

func TestNormalizeDepths(t *testing.T) {
	yamlDoc := `
sections:
  - id: top
    name: "Раздел"
    subsections:
      - id: sub
        name: "Подраздел"
        points:
          - id: pt
            name: "Пункт"
            subpoints:
              - id: spt
                name: "Подпункт"
                blocks:
                  - "текст"
  - id: flat
    name: "Раздел с пунктами"
    points:
      - id: flat_pt
        name: "Пункт без подраздела"
        blocks:
          - "текст"
`
	doc, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}

	depths := map[string]int{}
	kinds := map[string]Kind{}
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			depths[n.ID] = n.Depth
			kinds[n.ID] = n.Kind
			walk(n.Children())
		}
	}
	walk(doc.Sections)

	wantDepth := map[string]int{
		"top": 0, "sub": 1, "pt": 2, "spt": 3,
		"flat": 0, "flat_pt": 1,
	}
	for id, d := range wantDepth {
		if depths[id] != d {
			t.Errorf("node %s: expected depth %d, got %d", id, d, depths[id])
		}
	}
	if kinds["flat"] != KindSubsection {
		t.Errorf("expected flat kind subsection, got %s", kinds["flat"])
	}
	if kinds["spt"] != KindSubpoint {
		t.Errorf("expected spt kind subpoint, got %s", kinds["spt"])
	}
}

func TestValidateReportsProblems(t *testing.T) {
	yamlDoc := `
sections:
  - id: dup
    name: "Первый"
    blocks:
      - "текст"
  - id: dup
    name: "Второй"
    blocks:
      - "текст"
  - id: untitled
    blocks:
      - "текст"
  - id: lonely
    name: "Раздел"
    subsections:
      - id: lonely_sub
        name: "Подраздел"
        points:
          - id: lonely_pt
            name: "Единственный пункт"
            blocks:
              - "текст"
`
	doc, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}

	report := Validate(doc)
	if report.OK() {
		t.Fatal("expected validation errors")
	}

	if !containsSubstring(report.Errors, "duplicate id: dup") {
		t.Errorf("expected duplicate id error, got %v", report.Errors)
	}
	if !containsSubstring(report.Errors, "untitled") {
		t.Errorf("expected missing title error, got %v", report.Errors)
	}
	if !containsSubstring(report.Warnings, "single point") {
		t.Errorf("expected single point warning, got %v", report.Warnings)
	}
}

func TestValidateStructuralSectionsWithoutTitle(t *testing.T) {
	yamlDoc := `
sections:
  - id: title_page
    content:
      - type: text
        id: company_name
        value: "ООО Пример"
  - id: table_of_contents
  - id: s1
    name: "Назначение"
    blocks:
      - "текст"
  - id: appendices
`
	doc, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}

	report := Validate(doc)
	if !report.OK() {
		t.Errorf("expected bare service sections to validate, got %v", report.Errors)
	}
}

func TestValidateIntroWithoutTitle(t *testing.T) {
	yamlDoc := `
sections:
  - id: intro
    blocks:
      - "Вводный текст."
  - id: scope
    name: "Область применения"
    blocks:
      - "текст"
`
	doc, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}

	report := Validate(doc)
	for _, e := range report.Errors {
		if !strings.Contains(e, "intro") {
			t.Errorf("unexpected error: %s", e)
		}
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
