package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "Revisa las configuraciones de tipo de documento",
	Long: `Ejecuta el validador estructural sobre las cuatro configuraciones
registradas (invoice, quotation, purchase_order, vendor_bill) y lista los
hallazgos. Termina con código 1 si alguna configuración tiene errores.`,
	RunE: runConfigs,
}

func init() {
	rootCmd.AddCommand(configsCmd)
}

func runConfigs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var broken int
	for _, cfg := range formconfig.All() {
		issues := formconfig.Validate(cfg, false)
		if len(issues) == 0 {
			fmt.Fprintf(out, "%-16s ok\n", cfg.DocumentType)
			continue
		}
		fmt.Fprintf(out, "%-16s %d hallazgos\n", cfg.DocumentType, len(issues))
		for _, is := range issues {
			fmt.Fprintf(out, "  [%s] %s: %s (%s)\n", is.Severity, is.Rule, is.Message, is.Path)
		}
		if formconfig.HasErrors(issues) {
			broken++
		}
	}
	if broken > 0 {
		return fmt.Errorf("%d configuraciones con errores", broken)
	}
	return nil
}
