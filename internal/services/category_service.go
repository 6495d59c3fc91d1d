package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"finance-tracker/internal/models"
)

type categoryRegistry struct {
	entries []models.CategoryEntry
	byCode  map[string]models.CategoryEntry
}

type categoryService struct {
	registries map[models.Kind]*categoryRegistry
	palette    []string
}

// NewCategoryService builds the expense and earning registries. They are kept apart, so a
// code registered for one kind is unknown to the other.
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{
		registries: map[models.Kind]*categoryRegistry{
			models.KindExpense: newCategoryRegistry(models.ExpenseCategories()),
			models.KindEarning: newCategoryRegistry(models.EarningCategories()),
		},
		palette: models.ChartPalette(),
	}
}

func newCategoryRegistry(entries []models.CategoryEntry) *categoryRegistry {
	byCode := make(map[string]models.CategoryEntry, len(entries))
	for _, entry := range entries {
		byCode[entry.Code] = entry
	}
	return &categoryRegistry{entries: entries, byCode: byCode}
}

// LabelFor never fails: empty codes are "Uncategorized" and unregistered codes get a
// title-cased label derived from their snake_case segments.
func (s *categoryService) LabelFor(code string, kind models.Kind) string {
	if code == "" {
		return models.UncategorizedLabel
	}

	if entry, ok := s.EntryFor(code, kind); ok {
		return entry.Label
	}

	return deriveLabel(code)
}

// ColorFor folds negative indices so every int maps onto the palette.
func (s *categoryService) ColorFor(index int) string {
	n := len(s.palette)
	i := index % n
	if i < 0 {
		i += n
	}
	return s.palette[i]
}

func (s *categoryService) IsValid(code string, kind models.Kind) bool {
	_, ok := s.EntryFor(code, kind)
	return ok
}

func (s *categoryService) AllCodes(kind models.Kind) []string {
	registry, ok := s.registries[kind]
	if !ok {
		return []string{}
	}

	codes := make([]string, 0, len(registry.entries))
	for _, entry := range registry.entries {
		codes = append(codes, entry.Code)
	}
	return codes
}

func (s *categoryService) EntryFor(code string, kind models.Kind) (models.CategoryEntry, bool) {
	registry, ok := s.registries[kind]
	if !ok {
		return models.CategoryEntry{}, false
	}

	entry, ok := registry.byCode[code]
	return entry, ok
}

func (s *categoryService) EmojiFor(code string, kind models.Kind) string {
	entry, ok := s.EntryFor(code, kind)
	if !ok {
		return models.DefaultCategoryEmoji
	}

	marker, _, found := strings.Cut(entry.Label, " ")
	if !found || marker == "" {
		return models.DefaultCategoryEmoji
	}
	return marker
}

func (s *categoryService) Categories(kind models.Kind) []models.CategoryEntry {
	registry, ok := s.registries[kind]
	if !ok {
		return []models.CategoryEntry{}
	}

	out := make([]models.CategoryEntry, len(registry.entries))
	copy(out, registry.entries)
	return out
}

// deriveLabel turns "custom_code" into "Custom Code". Only the first letter of each
// segment changes case; empty segments are dropped.
func deriveLabel(code string) string {
	segments := strings.Split(code, "_")
	words := make([]string, 0, len(segments))

	for _, segment := range segments {
		if segment == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(segment)
		words = append(words, string(unicode.ToUpper(first))+segment[size:])
	}

	if len(words) == 0 {
		return models.UncategorizedLabel
	}
	return strings.Join(words, " ")
}
