// typeset.go — variant lists and the index maps between them.
//
// A variant list is named by a marker type (Of1[A] … Of9[A..I], or None).
// Its element types are read once per list via reflect.TypeFor and cached;
// duplicate types are rejected at that point with a ContractViolation.
//
// Every reshaping operation is index arithmetic over two lists. The plan
// for a given pair of lists (old index → new index) is a pure function of
// the two marker types, computed on first use and cached, so the payload is
// never inspected beyond comparing the stored tag.
package xgxunion

import (
	"reflect"
	"strings"
	"sync"
)

// MaxVariants is the largest supported variant list.
const MaxVariants = 9

// Variants is implemented by the variant-list markers of this package.
// The interface is sealed: lists are spelled Of1 … Of9 or None.
type Variants interface {
	variantTypes() []reflect.Type
}

// None is the empty variant list. It is the remainder type of a degenerate
// Narrow on a single-variant union; such a remainder is always nil.
type None struct{}

func (None) variantTypes() []reflect.Type { return nil }

// typeSet is the validated, indexed form of a variant list.
type typeSet struct {
	types []reflect.Type
	index map[reflect.Type]int
}

func (s *typeSet) indexOf(t reflect.Type) int {
	if i, ok := s.index[t]; ok {
		return i
	}
	return -1
}

func (s *typeSet) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, t := range s.types {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(typeName(t))
	}
	sb.WriteByte(')')
	return sb.String()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

var setCache sync.Map // reflect.Type (marker) -> *typeSet

// setOf returns the validated set for list L. Public operations call it
// directly, so a rejected list is reported at their caller.
func setOf[L Variants]() *typeSet {
	return setOfAt[L](2)
}

// setOfAt is setOf with an explicit report depth: skip=0 is the caller of
// setOfAt.
func setOfAt[L Variants](skip int) *typeSet {
	key := reflect.TypeFor[L]()
	if s, ok := setCache.Load(key); ok {
		return s.(*typeSet)
	}
	var l L
	types := l.variantTypes()
	s := &typeSet{types: types, index: make(map[reflect.Type]int, len(types))}
	for i, t := range types {
		if j, dup := s.index[t]; dup {
			panic(violation(skip+1, "variant list", "type %s appears at positions %d and %d of %s",
				typeName(t), j, i, s))
		}
		s.index[t] = i
	}
	actual, _ := setCache.LoadOrStore(key, s)
	return actual.(*typeSet)
}

type pairKey struct{ from, to reflect.Type }

type splitKey struct{ list, picked, rest reflect.Type }

var (
	widenCache sync.Map // pairKey -> []int
	splitCache sync.Map // splitKey -> *splitPlan
)

// widenPlan maps each index of From to its index in To.
func widenPlan[To, From Variants]() []int {
	key := pairKey{from: reflect.TypeFor[From](), to: reflect.TypeFor[To]()}
	if p, ok := widenCache.Load(key); ok {
		return p.([]int)
	}
	from, to := setOfAt[From](2), setOfAt[To](2)
	plan := make([]int, len(from.types))
	for i, t := range from.types {
		j := to.indexOf(t)
		if j < 0 {
			panic(violation(2, "Widen", "target %s is missing %s from %s", to, typeName(t), from))
		}
		plan[i] = j
	}
	actual, _ := widenCache.LoadOrStore(key, plan)
	return actual.([]int)
}

// splitPlan partitions a list into picked and rest. For every index i of
// the source list exactly one of picked[i], rest[i] is >= 0.
type splitPlan struct {
	picked []int
	rest   []int
}

// planSplit validates that Picked ⊆ L and Rest = L \ Picked (as sets; the
// order of Rest is free) and returns the re-tagging plan.
func planSplit[Picked, Rest, L Variants](op string) *splitPlan {
	key := splitKey{list: reflect.TypeFor[L](), picked: reflect.TypeFor[Picked](), rest: reflect.TypeFor[Rest]()}
	if p, ok := splitCache.Load(key); ok {
		return p.(*splitPlan)
	}
	list, picked, rest := setOfAt[L](2), setOfAt[Picked](2), setOfAt[Rest](2)
	for _, t := range picked.types {
		if list.indexOf(t) < 0 {
			panic(violation(2, op, "%s is not a variant of %s", typeName(t), list))
		}
	}
	plan := &splitPlan{picked: make([]int, len(list.types)), rest: make([]int, len(list.types))}
	remaining := 0
	for i, t := range list.types {
		plan.picked[i] = picked.indexOf(t)
		plan.rest[i] = -1
		if plan.picked[i] >= 0 {
			continue
		}
		j := rest.indexOf(t)
		if j < 0 {
			panic(violation(2, op, "remainder %s is missing %s from %s", rest, typeName(t), list))
		}
		plan.rest[i] = j
		remaining++
	}
	if remaining != len(rest.types) {
		panic(violation(2, op, "remainder %s has types outside %s minus %s", rest, list, picked))
	}
	actual, _ := splitCache.LoadOrStore(key, plan)
	return actual.(*splitPlan)
}

// Of1 … Of9 name ordered variant lists. They carry no data.
type (
	Of1[A any]                         struct{}
	Of2[A, B any]                      struct{}
	Of3[A, B, C any]                   struct{}
	Of4[A, B, C, D any]                struct{}
	Of5[A, B, C, D, E any]             struct{}
	Of6[A, B, C, D, E, F any]          struct{}
	Of7[A, B, C, D, E, F, G any]       struct{}
	Of8[A, B, C, D, E, F, G, H any]    struct{}
	Of9[A, B, C, D, E, F, G, H, I any] struct{}
)

func (Of1[A]) variantTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A]()}
}

func (Of2[A, B]) variantTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (Of3[A, B, C]) variantTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

func (Of4[A, B, C, D]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
	}
}

func (Of5[A, B, C, D, E]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](),
	}
}

func (Of6[A, B, C, D, E, F]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](), reflect.TypeFor[F](),
	}
}

func (Of7[A, B, C, D, E, F, G]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](), reflect.TypeFor[F](), reflect.TypeFor[G](),
	}
}

func (Of8[A, B, C, D, E, F, G, H]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](), reflect.TypeFor[F](), reflect.TypeFor[G](), reflect.TypeFor[H](),
	}
}

func (Of9[A, B, C, D, E, F, G, H, I]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](), reflect.TypeFor[F](), reflect.TypeFor[G](), reflect.TypeFor[H](),
		reflect.TypeFor[I](),
	}
}
