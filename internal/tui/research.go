package tui

import (
	"fmt"
	"time"

	"zenith/internal/i18n"
)

// researchDelay simulates the document analysis run.
const researchDelay = 2 * time.Second

const researchReportEN = `# Deep Research Results: %s

## Key Findings

1. **Budget Allocation Analysis**
   - The city allocated 35%% of its budget to infrastructure in 2024, up from 28%% in 2023.
   - Public transportation funding increased 12%% year over year.

2. **Environmental Considerations**
   - Impact assessments show a 15%% reduction in carbon emissions from city operations.
   - Urban planning guidelines now require 20%% green space in new developments.

3. **Public Opinion**
   - 72%% of surveyed residents support increased public transportation funding.
   - 65%% rank infrastructure improvement as a top priority.

## Comparative Analysis

| Category | 2023 | 2024 | Change |
|----------|------|------|--------|
| Transportation | $4.2M | $5.1M | +21.4%% |
| Infrastructure | $6.8M | $8.5M | +25.0%% |
| Public Health | $3.1M | $3.8M | +22.6%% |
| Environment | $2.3M | $3.2M | +39.1%% |

## Recommendations

1. Expand public transportation routes in underserved areas.
2. Review impact assessments for further emission reductions.
3. Align future budgets with resident priorities from the surveys.
`

const researchReportPT = `# Resultados da Pesquisa Profunda: %s

## Principais Descobertas

1. **Análise de Alocação de Orçamento**
   - A cidade alocou 35%% do orçamento para infraestrutura em 2024, contra 28%% em 2023.
   - O financiamento de transporte público aumentou 12%% ano a ano.

2. **Considerações Ambientais**
   - Avaliações de impacto mostram redução de 15%% nas emissões de carbono das operações.
   - As diretrizes de planejamento urbano agora exigem 20%% de espaço verde.

3. **Opinião Pública**
   - 72%% dos residentes pesquisados apoiam mais fundos para transporte público.
   - 65%% consideram a infraestrutura uma prioridade máxima.

## Análise Comparativa

| Categoria | 2023 | 2024 | Mudança |
|-----------|------|------|---------|
| Transporte | R$ 4,2M | R$ 5,1M | +21,4%% |
| Infraestrutura | R$ 6,8M | R$ 8,5M | +25,0%% |
| Saúde Pública | R$ 3,1M | R$ 3,8M | +22,6%% |
| Meio Ambiente | R$ 2,3M | R$ 3,2M | +39,1%% |

## Recomendações

1. Ampliar rotas de transporte público em áreas menos atendidas.
2. Revisar avaliações de impacto para reduzir ainda mais as emissões.
3. Alinhar orçamentos futuros às prioridades dos residentes.
`

// researchReport renders the canned analysis for the query in the
// current language.
func researchReport(lang i18n.Language, query string) string {
	if lang == i18n.Portuguese {
		return fmt.Sprintf(researchReportPT, query)
	}
	return fmt.Sprintf(researchReportEN, query)
}
