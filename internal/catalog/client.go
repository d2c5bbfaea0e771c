package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the remote articles endpoint and normalizes its flat
// string records into Products.
type Client struct {
	endpoint string // full get_all_articles URL
	origin   string // scheme://host, for image URLs
	http     *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("catalog: invalid endpoint %q", endpoint)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		endpoint: endpoint,
		origin:   u.Scheme + "://" + u.Host,
		http:     httpClient,
	}, nil
}

// FetchAll returns every sellable product. Records with zero or missing
// global stock are dropped here, not downstream.
func (c *Client) FetchAll(ctx context.Context) ([]Product, error) {
	env, err := c.get(ctx, "fetch_all", url.Values{})
	if err != nil {
		return nil, err
	}
	return c.normalizeAll(env.Products, 70), nil
}

// FetchOne fetches a single product by its catalog ID.
func (c *Client) FetchOne(ctx context.Context, id int) (Product, error) {
	q := url.Values{}
	q.Set("id_product", strconv.Itoa(id))
	env, err := c.get(ctx, "fetch_one", q)
	if err != nil {
		return Product{}, err
	}
	if len(env.Products) == 0 {
		return Product{}, &FetchError{Op: "fetch_one", Err: fmt.Errorf("product %d: %w", id, ErrNotFound)}
	}
	return c.normalize(env.Products[0], 70), nil
}

// FetchPage fetches one catalog page. The remote endpoint also wants the
// running count of items already shown (nb_items_passed).
func (c *Client) FetchPage(ctx context.Context, page, limit, nbItemsPassed int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("nb_items_passed", strconv.Itoa(nbItemsPassed))
	env, err := c.get(ctx, "fetch_page", q)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Products:    c.normalizeAll(env.Products, 60),
		TotalPages:  env.TotalPages,
		CurrentPage: env.CurrentPage,
	}, nil
}

func (c *Client) get(ctx context.Context, op string, q url.Values) (*envelope, error) {
	// cache buster, same trick the storefront always used
	q.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, &FetchError{Op: op, Err: fmt.Errorf("http %d", res.StatusCode)}
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	if env.Status != "success" {
		return nil, &FetchError{Op: op, Status: env.Status}
	}
	return &env, nil
}

func (c *Client) normalizeAll(raw []rawProduct, quality int) []Product {
	out := make([]Product, 0, len(raw))
	for _, r := range raw {
		if parseIntDefault(r.QntyProduct) <= 0 {
			continue
		}
		out = append(out, c.normalize(r, quality))
	}
	return out
}

func (c *Client) normalize(r rawProduct, quality int) Product {
	return Product{
		ID:       parseIntDefault(r.IDProduct),
		Name:     r.NomProduct,
		Material: r.TypeProduct,
		Color:    r.ColorProduct,
		Price:    parseFloatDefault(r.PriceProduct),

		Image:  c.imageURL(r.ImgProduct, quality),
		Image2: c.imageURL(r.Img2Product, quality),
		Image3: c.imageURL(r.Img3Product, quality),
		Image4: c.imageURL(r.Img4Product, quality),

		Description:     r.DescriptionProduct,
		Status:          r.StatusProduct,
		Reference:       r.ReferenceProduct,
		ItemGroup:       r.ItemgroupProduct,
		Category:        r.CategoryProduct,
		RelatedProducts: r.RelatedProducts,
		Discount:        r.DiscountProduct,

		Sizes: map[string]int{
			"s":    parseIntDefault(r.SSize),
			"m":    parseIntDefault(r.MSize),
			"l":    parseIntDefault(r.LSize),
			"xl":   parseIntDefault(r.XLSize),
			"xxl":  parseIntDefault(r.XXLSize),
			"xxl2": parseIntDefault(r.XXL2Size),
			"3xl":  parseIntDefault(r.S3XLSize),
			"48":   parseIntDefault(r.S48Size),
			"50":   parseIntDefault(r.S50Size),
			"52":   parseIntDefault(r.S52Size),
			"54":   parseIntDefault(r.S54Size),
			"56":   parseIntDefault(r.S56Size),
			"58":   parseIntDefault(r.S58Size),
		},
		Quantity: parseIntDefault(r.QntyProduct),
	}
}

func (c *Client) imageURL(path string, quality int) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s?format=webp&quality=%d", c.origin, strings.TrimPrefix(path, "/"), quality)
}

// The PHP side ships every number as a string; bad values degrade to zero
// instead of failing the whole listing.
func parseIntDefault(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatDefault(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return f
}
