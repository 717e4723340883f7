package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/adapter"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/pkg/money"
)

var calcCmd = &cobra.Command{
	Use:   "calc <tipo> [archivo.json]",
	Short: "Calcula cifras y totales de un documento",
	Long: `Lee un documento en formato externo (archivo o stdin), deriva montos por
línea, IVA, descuentos y totales, y emite el payload completo en JSON.

Tipos soportados: invoice, quotation, purchase_order, vendor_bill.`,
	Example: `  # Calcular una factura desde archivo
  docforms calc invoice factura.json

  # Desde stdin, con resumen legible de totales
  cat factura.json | docforms calc invoice --summary`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().Bool("summary", false, "Imprime un resumen legible de totales en stderr")
}

func runCalc(cmd *cobra.Command, args []string) error {
	doc, ad, err := loadDocument(args)
	if err != nil {
		return err
	}
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		printSummary(cmd.ErrOrStderr(), doc)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(ad.FromForm(doc))
}

// loadDocument resuelve el adaptador del tipo pedido y lee el documento
// desde el archivo dado o stdin.
func loadDocument(args []string) (entity.DocumentState, adapter.Adapter, error) {
	ad, err := adapter.ForType(args[0])
	if err != nil {
		return entity.DocumentState{}, nil, err
	}

	var r io.Reader = os.Stdin
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return entity.DocumentState{}, nil, err
		}
		defer f.Close()
		r = f
	}

	var body map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return entity.DocumentState{}, nil, fmt.Errorf("leer documento: %w", err)
	}
	return ad.ToForm(body), ad, nil
}

func printSummary(w io.Writer, doc entity.DocumentState) {
	cur := doc.Header.Currency
	t := doc.Totals
	fmt.Fprintln(w, "Subtotal:  ", money.Format(t.Subtotal, cur))
	if t.DiscountAmount.IsPositive() {
		fmt.Fprintln(w, "Descuento: ", money.Format(t.DiscountAmount, cur))
	}
	if t.ChargesTotal.IsPositive() {
		fmt.Fprintln(w, "Cargos:    ", money.Format(t.ChargesTotal, cur))
	}
	fmt.Fprintln(w, "IVA:       ", money.Format(t.VatAmount, cur))
	fmt.Fprintln(w, "Total:     ", money.Format(t.Total, cur))
	if cur != "AED" {
		fmt.Fprintln(w, "Total AED: ", money.Format(t.TotalAed, "AED"))
	}
}
