package namematch

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Decision решение оператора по строке импорта
type Decision string

const (
	DecisionConfirm Decision = "confirm" // принять лучшего кандидата
	DecisionChoose  Decision = "choose"  // выбрать другого кандидата вручную
	DecisionSkip    Decision = "skip"    // пропустить строку
	DecisionCreate  Decision = "create"  // завести нового ученика
)

// IsValid проверяет, что решение известно
func (d Decision) IsValid() bool {
	switch d {
	case DecisionConfirm, DecisionChoose, DecisionSkip, DecisionCreate:
		return true
	default:
		return false
	}
}

// Candidate существующий ученик
type Candidate struct {
	ID   string
	Name string
}

// Match результат сопоставления
type Match struct {
	Candidate Candidate
	Score     float64
}

// Result лучший кандидат и нужно ли решение оператора
type Result struct {
	Best          *Match
	NeedsDecision bool
}

// Normalize убирает диакритику, приводит регистр и схлопывает пробелы
func Normalize(s string) string {
	// Трансформеры хранят состояние, поэтому создаются на каждый вызов
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, s)
	if err != nil {
		out = s
	}
	out = cases.Fold().String(out)
	return strings.Join(strings.Fields(out), " ")
}

// Similarity 1 - levenshtein(a, b) / max(len(a), len(b)) по нормализованным строкам
// Для пустой строки схожесть равна нулю
func Similarity(a, b string) float64 {
	ra, rb := []rune(Normalize(a)), []rune(Normalize(b))
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 1 - float64(Levenshtein(ra, rb))/float64(longest)
}

// Levenshtein расстояние редактирования по рунам
func Levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Rank кандидаты по убыванию схожести, не больше limit (0 = все)
// При равной схожести сохраняется исходный порядок кандидатов
func Rank(input string, candidates []Candidate, limit int) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, Match{Candidate: c, Score: Similarity(input, c.Name)})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Find лучший кандидат для имени
// При схожести не ниже порога нужно решение оператора, иначе заводится новый ученик
func Find(input string, candidates []Candidate) Result {
	ranked := Rank(input, candidates, 1)
	if len(ranked) == 0 || ranked[0].Score <= 0 {
		return Result{}
	}
	best := ranked[0]
	return Result{Best: &best, NeedsDecision: best.Score >= domain.NameMatchThreshold}
}
