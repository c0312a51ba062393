package constants

import (
	"sort"
	"strings"

	"github.com/piresc/routefinder/internal/pkg/models"
)

// Destinations is the catalogue of predefined destinations offered by the CLI and the web form
var Destinations = []models.Destination{
	{Name: "Hospital de Clínicas", Address: "Rua General Carneiro, 181, Alto da Glória, Curitiba - PR"},
	{Name: "Hospital Evangélico Mackenzie", Address: "Alameda Augusto Stellfeld, 1908, Bigorrilho, Curitiba - PR"},
	{Name: "Hospital Pequeno Príncipe", Address: "Rua Desembargador Motta, 1070, Água Verde, Curitiba - PR"},
	{Name: "Rodoferroviária de Curitiba", Address: "Avenida Presidente Affonso Camargo, 330, Jardim Botânico, Curitiba - PR"},
	{Name: "Aeroporto Afonso Pena", Address: "Avenida Rocha Pombo, s/n, Águas Belas, São José dos Pinhais - PR"},
	{Name: "Jardim Botânico", Address: "Rua Engenheiro Ostoja Roguski, Jardim Botânico, Curitiba - PR"},
	{Name: "Praça Tiradentes", Address: "Praça Tiradentes, Centro, Curitiba - PR"},
	{Name: "UFPR Reitoria", Address: "Rua XV de Novembro, 1299, Centro, Curitiba - PR"},
}

// LookupDestination returns the address of a predefined destination, matching the name case-insensitively
func LookupDestination(catalogue []models.Destination, name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, d := range catalogue {
		if strings.EqualFold(d.Name, name) {
			return d.Address, true
		}
	}
	return "", false
}

// DestinationNames returns the catalogue names sorted alphabetically
func DestinationNames(catalogue []models.Destination) []string {
	names := make([]string, 0, len(catalogue))
	for _, d := range catalogue {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}
