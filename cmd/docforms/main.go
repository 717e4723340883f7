// docforms: CLI de los motores de documentos. Permite calcular y validar un
// documento en JSON sin levantar la API, y revisar las configuraciones por
// tipo de documento.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "docforms",
	Short:   "Motores de cálculo y validación de documentos comerciales",
	Version: version,
	Long: `docforms expone por línea de comandos los motores del dominio:
el calculador de totales (IVA, descuentos, cargos) y el validador por capas,
para facturas, cotizaciones, órdenes de compra y facturas de proveedor.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
