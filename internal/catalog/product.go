package catalog

import "fioriforyou.com/app/internal/modules/category"

// Product is the normalized catalog record the rest of the app works with.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Material string  `json:"material"`
	Color    string  `json:"color"`
	Price    float64 `json:"price"`

	Image  string `json:"image"`
	Image2 string `json:"image2,omitempty"`
	Image3 string `json:"image3,omitempty"`
	Image4 string `json:"image4,omitempty"`

	Description     string `json:"description"`
	Status          string `json:"status"`
	Reference       string `json:"reference"`
	ItemGroup       string `json:"itemgroup_product"`
	Category        string `json:"category_product"`
	RelatedProducts string `json:"related_products"`
	Discount        string `json:"discount_product"`

	// Sizes maps stock keys (s..3xl, xxl2, 48..58) to available counts.
	Sizes    map[string]int `json:"sizes"`
	Quantity int            `json:"quantity"`
}

// StockFor reads the stock count for a displayed size label.
func (p Product) StockFor(displaySize string) int {
	if p.Sizes == nil {
		return 0
	}
	return p.Sizes[category.StockKey(displaySize)]
}

// rawProduct mirrors the flat PHP-side record, every field a string.
type rawProduct struct {
	IDProduct          string `json:"id_product"`
	NomProduct         string `json:"nom_product"`
	TypeProduct        string `json:"type_product"`
	ColorProduct       string `json:"color_product"`
	PriceProduct       string `json:"price_product"`
	QntyProduct        string `json:"qnty_product"`
	DiscountProduct    string `json:"discount_product"`
	DescriptionProduct string `json:"description_product"`
	StatusProduct      string `json:"status_product"`
	ReferenceProduct   string `json:"reference_product"`
	ItemgroupProduct   string `json:"itemgroup_product"`
	CategoryProduct    string `json:"category_product"`
	RelatedProducts    string `json:"related_products"`

	ImgProduct  string `json:"img_product"`
	Img2Product string `json:"img2_product"`
	Img3Product string `json:"img3_product"`
	Img4Product string `json:"img4_product"`

	SSize    string `json:"s_size"`
	MSize    string `json:"m_size"`
	LSize    string `json:"l_size"`
	XLSize   string `json:"xl_size"`
	XXLSize  string `json:"xxl_size"`
	XXL2Size string `json:"xxl2_size"`
	S3XLSize string `json:"3xl_size"`
	S48Size  string `json:"48_size"`
	S50Size  string `json:"50_size"`
	S52Size  string `json:"52_size"`
	S54Size  string `json:"54_size"`
	S56Size  string `json:"56_size"`
	S58Size  string `json:"58_size"`
}

type envelope struct {
	Status      string       `json:"status"`
	Products    []rawProduct `json:"products"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

// Page is the result of a paginated catalog fetch.
type Page struct {
	Products    []Product `json:"products"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}
