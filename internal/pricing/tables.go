package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/KairamCabral/terravik-sub003/pkg/enums"
)

// discountByFrequency is the closed discount table. Longer intervals earn
// the larger discount; the four keys are the only frequencies sold.
var discountByFrequency = map[enums.FrequencyDays]decimal.Decimal{
	enums.Frequency30: decimal.New(8, -2),
	enums.Frequency45: decimal.New(12, -2),
	enums.Frequency60: decimal.New(15, -2),
	enums.Frequency90: decimal.New(18, -2),
}

// recommendedFrequency flags the option highlighted in the storefront.
const recommendedFrequency = enums.Frequency45

var labelByFrequency = map[enums.FrequencyDays]string{
	enums.Frequency30: "A cada 30 dias",
	enums.Frequency45: "A cada 45 dias",
	enums.Frequency60: "A cada 60 dias",
	enums.Frequency90: "A cada 90 dias",
}

var messageByFrequency = map[enums.FrequencyDays]string{
	enums.Frequency30: "Ritmo intenso: ideal para gramados em crescimento rápido ou em recuperação.",
	enums.Frequency45: "O equilíbrio preferido dos nossos clientes: cobertura contínua sem sobras no armário.",
	enums.Frequency60: "Bom para gramados estabelecidos em clima ameno.",
	enums.Frequency90: "Manutenção mínima para gramados maduros e pouco exigentes.",
}

// subscriptionBenefits is the fixed list served with the frequency catalog.
var subscriptionBenefits = []string{
	"Frete grátis em todas as entregas",
	"Desconto crescente conforme a frequência",
	"Pause, adiante ou cancele quando quiser",
	"Lembrete de aplicação antes de cada entrega",
}

// savingsAnalogyBuckets maps annual savings to a relatable comparison.
// Thresholds ascend; the first bucket whose bound exceeds the amount wins,
// so the lookup is total over non-negative amounts.
var savingsAnalogyBuckets = []struct {
	upTo    decimal.Decimal
	message string
}{
	{decimal.NewFromInt(50), "dá para renovar as mudas dos canteiros"},
	{decimal.NewFromInt(150), "equivale a um jogo novo de ferramentas de jardim"},
	{decimal.NewFromInt(300), "paga um mês da conta de água da casa"},
}

// savingsAnalogyTop covers every amount above the last bucket bound.
const savingsAnalogyTop = "cobre um churrasco completo de fim de ano"
