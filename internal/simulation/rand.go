package simulation

// NewSeededRand cria um gerador pseudo-aleatório determinístico a partir de uma
// seed textual (normalmente o SKU do produto). A mesma seed produz sempre a
// mesma sequência de valores em [0,1), o que garante históricos reproduzíveis
// entre execuções. Não tem nenhuma propriedade criptográfica.
func NewSeededRand(seedStr string) func() float64 {
	seed := 0
	for _, c := range seedStr {
		seed = (seed + int(c)) % 10000
	}

	return func() float64 {
		seed = (seed*9301 + 49297) % 233280
		return float64(seed) / 233280
	}
}
