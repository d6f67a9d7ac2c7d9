package catalog

// Phase names of the reference deployment.
const (
	PhasePlanning      = "Planejamento"
	PhaseSpecification = "Especificação"
	PhaseDevelopment   = "Desenvolvimento"
	PhaseHomologation  = "Homologação"
	PhaseDeployment    = "Implantação"
	PhaseManagement    = "Gestão"
)

// Default returns the reference phase table: five weighted phases summing
// to 100 plus the informational management phase.
func Default() Catalog {
	return New(
		PhaseDefinition{
			Name:             PhasePlanning,
			Order:            1,
			NominalWeight:    10,
			TaskTypeMatchers: []string{"Planejamento", "Levantamento", "Kickoff"},
		},
		PhaseDefinition{
			Name:             PhaseSpecification,
			Order:            2,
			NominalWeight:    15,
			TaskTypeMatchers: []string{"Especificação", "Análise", "Requisitos"},
		},
		PhaseDefinition{
			Name:             PhaseDevelopment,
			Order:            3,
			NominalWeight:    45,
			TaskTypeMatchers: []string{"Desenvolvimento", "Codificação"},
		},
		PhaseDefinition{
			Name:             PhaseHomologation,
			Order:            4,
			NominalWeight:    20,
			TaskTypeMatchers: []string{"Homologação", "Teste"},
		},
		PhaseDefinition{
			Name:             PhaseDeployment,
			Order:            5,
			NominalWeight:    10,
			TaskTypeMatchers: []string{"Implantação", "Deploy", "Go-live"},
		},
		PhaseDefinition{
			Name:             PhaseManagement,
			Order:            6,
			NominalWeight:    0,
			TaskTypeMatchers: []string{"Gestão", "Reunião"},
			Informational:    true,
		},
	)
}
