// mockshopapi stands in for the remote PHP shop API during local
// development: catalog envelope, order intake, stock updates and the mail
// relay, all faked in one process.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
)

type product map[string]string

var seed = []product{
	{
		"id_product": "1", "nom_product": "Chemise Oxford Bleue", "type_product": "coton",
		"color_product": "bleu", "price_product": "129.00", "qnty_product": "12",
		"discount_product": "10", "itemgroup_product": "chemises", "category_product": "homme",
		"status_product": "active", "reference_product": "CH-001", "description_product": "Chemise en coton.",
		"img_product": "uploads/ch-001.jpg",
		"s_size":      "2", "m_size": "4", "l_size": "3", "xl_size": "2", "xxl_size": "1", "3xl_size": "0",
	},
	{
		"id_product": "2", "nom_product": "Cravate Soie Bordeaux", "type_product": "soie",
		"color_product": "bordeaux", "price_product": "59.00", "qnty_product": "8",
		"discount_product": "0", "itemgroup_product": "cravates", "category_product": "homme",
		"status_product": "active", "reference_product": "CR-014", "description_product": "Cravate en soie.",
		"img_product": "uploads/cr-014.jpg",
	},
	{
		"id_product": "3", "nom_product": "Costume Trois Pièces", "type_product": "laine",
		"color_product": "gris", "price_product": "499.00", "qnty_product": "5",
		"discount_product": "15", "itemgroup_product": "costumes", "category_product": "homme",
		"status_product": "active", "reference_product": "CO-201", "description_product": "Costume en laine.",
		"img_product": "uploads/co-201.jpg",
		"48_size":     "1", "50_size": "2", "52_size": "1", "54_size": "1", "56_size": "0", "58_size": "0",
	},
}

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/products.php", handleProducts)
	mux.HandleFunc("/api/orders.php", handleOrders)
	mux.HandleFunc("/api/stock.php", handleStock)
	mux.HandleFunc("/api/mail.php", handleMail)

	fmt.Printf("mock shop api listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
		os.Exit(1)
	}
}

func handleProducts(w http.ResponseWriter, r *http.Request) {
	products := seed

	if idStr := r.URL.Query().Get("id_product"); idStr != "" {
		products = nil
		for _, p := range seed {
			if p["id_product"] == idStr {
				products = []product{p}
				break
			}
		}
	}

	resp := map[string]any{"status": "success", "products": products}
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, _ := strconv.Atoi(pageStr)
		if page < 1 {
			page = 1
		}
		resp["totalPages"] = 1
		resp["currentPage"] = page
	}
	writeJSON(w, resp)
}

func handleOrders(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, map[string]any{"success": false, "message": "invalid payload"})
		return
	}
	log.Printf("order received: order_id=%v", payload["order_id"])
	writeJSON(w, map[string]any{"success": true, "message": "order recorded"})
}

func handleStock(w http.ResponseWriter, r *http.Request) {
	var upd struct {
		IDProduct string `json:"id_product"`
		SizeKey   string `json:"size_key"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	log.Printf("stock decrement: product=%s size=%s qty=%d", upd.IDProduct, upd.SizeKey, upd.Quantity)
	writeJSON(w, map[string]any{"success": true})
}

func handleMail(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	log.Printf("mail relay: %d bytes", len(body))
	writeJSON(w, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
