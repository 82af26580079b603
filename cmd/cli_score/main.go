// cli_score calcula los valores OCEAN de una sesion guardada sin levantar el
// servicio: util para revisar registros a mano.
//
//	go run ./cmd/cli_score -battery data/batteries/standard.csv -session data/sessions/<id>.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dog-ocean/internal/domain"
	"dog-ocean/internal/scoring"
	"dog-ocean/internal/storage"
)

func main() {
	batteryPath := flag.String("battery", "", "ruta a la planilla CSV de la bateria")
	sessionPath := flag.String("session", "", "ruta al registro JSON de la sesion")
	flag.Parse()

	if *batteryPath == "" || *sessionPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	battery, err := storage.ImportBatteryFile(*batteryPath)
	if err != nil {
		log.Fatalf("battery: %v", err)
	}

	data, err := os.ReadFile(*sessionPath)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	session, err := storage.DecodeSession(data)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	scores, err := scoring.NewAnalyzer(session, battery).Calculate()
	if err != nil {
		log.Fatalf("scoring: %v", err)
	}

	fmt.Printf("Perro: %s (%s)\n", session.DogData.DogName, session.DogData.Breed)
	fmt.Printf("Bateria: %s (%d/%d pruebas completadas)\n\n",
		battery.Name, session.CompletedCount(), len(battery.Items))

	fmt.Printf("%-20s %6s %6s %8s %8s\n", "Dimension", "Suma", "N", "Prom", "Rango")
	for _, dim := range domain.Dimensions() {
		max := scoring.DimensionMax(battery, dim)
		fmt.Printf("%-20s %6d %6d %8.2f ±%d\n",
			dim, scores.Sum(dim), scores.Count(dim), scores.Average(dim), max)
	}

	if session.IdealProfile != nil {
		fmt.Printf("\nPerfil ideal:        %s\n", session.IdealProfile.Format())
	}
	if session.OwnerProfile != nil {
		fmt.Printf("Perfil cuestionario: %s\n", session.OwnerProfile.Format())
	}
	fmt.Printf("Perfil medido:       %s\n", scores.Profile().Format())
}
