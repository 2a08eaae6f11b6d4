package taxonomy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercase(t *testing.T) {
	tax := New()

	assert.Equal(t, "python", tax.Normalize("Python"))
	assert.Equal(t, "python", tax.Normalize("  PYTHON  "))
}

func TestNormalize_AliasResolution(t *testing.T) {
	tax := New()

	assert.Equal(t, "kubernetes", tax.Normalize("K8s"))
	assert.Equal(t, "javascript", tax.Normalize("Node.js"))
	assert.Equal(t, "react", tax.Normalize("ReactJS"))
	assert.Equal(t, "postgresql", tax.Normalize("Postgres"))
	assert.Equal(t, "c#", tax.Normalize(".NET"))
}

func TestNormalize_PunctuationKeepsLanguageSymbols(t *testing.T) {
	tax := New()

	assert.Equal(t, "c++", tax.Normalize("C++"))
	assert.Equal(t, "c#", tax.Normalize("C#"))
	// Commas and parens are stripped, whitespace collapses.
	assert.Equal(t, "machine learning", tax.Normalize("Machine   Learning,"))
}

func TestNormalize_UnknownSkillComesBackCleaned(t *testing.T) {
	tax := New()

	assert.Equal(t, "underwater basket weaving", tax.Normalize("Underwater Basket Weaving"))
}

func TestNormalize_Empty(t *testing.T) {
	tax := New()

	assert.Equal(t, "", tax.Normalize(""))
}

func TestNormalize_Idempotent(t *testing.T) {
	tax := New()

	inputs := []string{"K8s", "Node.js", "C++", " Python 3 ", "Vue.js", "some-unknown skill!"}
	for _, input := range inputs {
		once := tax.Normalize(input)
		assert.Equal(t, once, tax.Normalize(once), "input %q", input)
	}
}

func TestNormalize_AliasCollisionUsesCurationOrder(t *testing.T) {
	tax := New()

	// "tf" is claimed by both terraform and tensorflow; the tensorflow entry
	// comes later in the alias table and wins.
	assert.Equal(t, "tensorflow", tax.Normalize("tf"))
}

func TestNormalize_ConcurrentUse(t *testing.T) {
	tax := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "kubernetes", tax.Normalize("K8s"))
				assert.Equal(t, "python", tax.Normalize("Python"))
			}
		}()
	}
	wg.Wait()
}
