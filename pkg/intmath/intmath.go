// Package intmath implements bounded integer operations: divisor enumeration,
// factorial lookup and prime filtering.
//
// All operations are pure. Inputs are validated completely before any
// arithmetic runs, and every rejection is a *calcerr.InputError of kind
// calcerr.KindComputationInput.
package intmath

import (
	"math"
	"sort"

	"github.com/l3aro/intcalc/pkg/calcerr"
	"github.com/l3aro/intcalc/pkg/formatter"
)

// Fixed input limits.
const (
	MaxAbsInteger     = 10000
	MinInteger        = -MaxAbsInteger
	MaxFactorialInput = 12
	MaxListSize       = 500
)

// PrimesElement is the root element name of PrimesIn documents.
const PrimesElement = "primeNumbers"

const (
	opDivisors  = "divisors"
	opFactorial = "factorial"
	opPrimesIn  = "primesIn"
)

// factorials holds n! for n in [0, MaxFactorialInput].
var factorials = [MaxFactorialInput + 1]int{
	1,
	1,
	2,
	6,
	24,
	120,
	720,
	5040,
	40320,
	362880,
	3628800,
	39916800,
	479001600,
}

// ResultFormatter renders a named integer set as XML.
type ResultFormatter interface {
	ToXML(elementName string, numbers []int) (string, error)
}

// Calculator runs the list operations that hand off to a ResultFormatter.
// It is safe for concurrent use.
type Calculator struct {
	formatter ResultFormatter
}

// New returns a Calculator that formats with f. A nil f selects the default
// XML formatter.
func New(f ResultFormatter) *Calculator {
	if f == nil {
		f = formatter.NewXML(formatter.DefaultOptions())
	}
	return &Calculator{formatter: f}
}

var defaultCalculator = New(nil)

// Divisors returns the divisors of |n| other than 1 and |n|, each paired with
// its negation, in ascending order.
func Divisors(n int) ([]int, error) {
	if n == 0 {
		return nil, calcerr.Computation(opDivisors, calcerr.ReasonZero, "input must not be zero")
	}
	if n == 1 || n == -1 {
		return nil, calcerr.Computation(opDivisors, calcerr.ReasonUnit, "input must not be one or negative one")
	}
	if n < MinInteger || n > MaxAbsInteger {
		return nil, calcerr.Computation(opDivisors, calcerr.ReasonOutOfRange,
			"input must be between %d and %d", MinInteger, MaxAbsInteger)
	}

	abs := absInt(n)
	if IsPrime(abs) {
		return nil, calcerr.Computation(opDivisors, calcerr.ReasonPrime, "prime numbers are not allowed")
	}

	var divisors []int
	for i := 2; i*i <= abs; i++ {
		if abs%i != 0 {
			continue
		}
		divisors = append(divisors, i, -i)
		if c := abs / i; c != i {
			divisors = append(divisors, c, -c)
		}
	}

	sort.Ints(divisors)
	return divisors, nil
}

// DivisorsOf is Divisors for loosely typed input; v must be a true integer.
func DivisorsOf(v interface{}) ([]int, error) {
	n, ok := ToInteger(v)
	if !ok {
		return nil, calcerr.Computation(opDivisors, calcerr.ReasonNotInteger, "input must be an integer")
	}
	return Divisors(n)
}

// Factorial returns n! for n in [0, 12] from a precomputed table.
func Factorial(n int) (int, error) {
	if n < 0 || n > MaxFactorialInput {
		return 0, calcerr.Computation(opFactorial, calcerr.ReasonOutOfRange,
			"input must be between 0 and %d", MaxFactorialInput)
	}
	return factorials[n], nil
}

// FactorialOf is Factorial for loosely typed input; v must be a true integer.
func FactorialOf(v interface{}) (int, error) {
	n, ok := ToInteger(v)
	if !ok {
		return 0, calcerr.Computation(opFactorial, calcerr.ReasonNotInteger, "input must be an integer")
	}
	return Factorial(n)
}

// PrimesIn filters numbers down to its primes, keeping input order, and
// returns them as a primeNumbers XML document.
//
// When the input is valid but holds no primes the formatter's empty-input
// error (kind calcerr.KindFormattingInput) is returned unchanged.
func (c *Calculator) PrimesIn(numbers []int) (string, error) {
	values := make([]interface{}, len(numbers))
	for i, n := range numbers {
		values[i] = n
	}
	return c.PrimesInValues(values)
}

// PrimesInValues is PrimesIn for loosely typed elements. Each element must be
// a true integer; floats are rejected even when integral.
func (c *Calculator) PrimesInValues(values []interface{}) (string, error) {
	ints, err := validateList(values)
	if err != nil {
		return "", err
	}
	return c.formatter.ToXML(PrimesElement, FilterPrimes(ints))
}

// PrimesIn runs (*Calculator).PrimesIn with the default XML formatter.
func PrimesIn(numbers []int) (string, error) {
	return defaultCalculator.PrimesIn(numbers)
}

// PrimesInValues runs (*Calculator).PrimesInValues with the default XML formatter.
func PrimesInValues(values []interface{}) (string, error) {
	return defaultCalculator.PrimesInValues(values)
}

// FilterPrimes returns the primes of numbers in their original order.
func FilterPrimes(numbers []int) []int {
	primes := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}

// PrimesOf validates values like PrimesInValues and returns the retained
// primes without formatting them. The result may be empty.
func PrimesOf(values []interface{}) ([]int, error) {
	ints, err := validateList(values)
	if err != nil {
		return nil, err
	}
	return FilterPrimes(ints), nil
}

// ValidateList checks a prime candidate list without filtering it.
func ValidateList(numbers []int) error {
	values := make([]interface{}, len(numbers))
	for i, n := range numbers {
		values[i] = n
	}
	_, err := validateList(values)
	return err
}

// validateList applies the list preconditions in order and converts the
// elements. Type and range are checked element by element over the whole list.
func validateList(values []interface{}) ([]int, error) {
	if len(values) == 0 {
		return nil, calcerr.Computation(opPrimesIn, calcerr.ReasonEmpty, "input array cannot be empty")
	}
	if len(values) > MaxListSize {
		return nil, calcerr.Computation(opPrimesIn, calcerr.ReasonTooMany,
			"array cannot exceed %d elements", MaxListSize)
	}

	ints := make([]int, len(values))
	for i, v := range values {
		n, ok := ToInteger(v)
		if !ok {
			return nil, calcerr.Computation(opPrimesIn, calcerr.ReasonElementType,
				"all elements in the array must be integers (index %d)", i)
		}
		if absInt(n) > MaxAbsInteger {
			return nil, calcerr.Computation(opPrimesIn, calcerr.ReasonElementRange,
				"individual integers cannot exceed +/- %d (index %d)", MaxAbsInteger, i)
		}
		ints[i] = n
	}
	return ints, nil
}

// IsPrime reports whether n is prime using 6k±1 trial division.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

func absInt(n int) int {
	if n < 0 {
		if n == math.MinInt {
			return math.MaxInt
		}
		return -n
	}
	return n
}
