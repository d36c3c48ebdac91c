// Package catalog serves the read-only reference data: branches, products, branch prices,
// grinds, categories and subscription plans.
package catalog

import (
	_ "embed"
	"log/slog"
	"os"
	"strings"

	"coffissimo/config"
	"coffissimo/internal/domain/entity"
	"coffissimo/internal/domain/repository"
	"coffissimo/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type document struct {
	Branches            []entity.Branch             `yaml:"branches"`
	Products            []entity.Product            `yaml:"products"`
	BranchProducts      []entity.BranchProduct      `yaml:"branchProducts"`
	GrindOptions        []entity.GrindOption        `yaml:"grindOptions"`
	Categories          []entity.CategoryInfo       `yaml:"categories"`
	SubscriptionOptions []entity.SubscriptionOption `yaml:"subscriptionOptions"`
}

type catalogRepository struct {
	doc document
}

// Params holds dependencies for the catalog, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New loads the catalog from catalog.path when set, otherwise from the embedded document.
func New(params Params) (repository.CatalogRepository, error) {
	if params.Config.Catalog == nil || strings.TrimSpace(params.Config.Catalog.Path) == "" {
		return Parse(embeddedCatalog)
	}

	path := params.Config.Catalog.Path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}
	params.Logger.Info("Using catalog override", slog.String("path", path))

	return Parse(data)
}

// Default returns the embedded catalog.
func Default() repository.CatalogRepository {
	repo, err := Parse(embeddedCatalog)
	if err != nil {
		panic(err)
	}

	return repo
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (repository.CatalogRepository, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog")
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &catalogRepository{doc: doc}, nil
}

func (d *document) validate() error {
	branches := make(map[string]bool, len(d.Branches))
	for _, branch := range d.Branches {
		if branch.ID == "" {
			return errors.New("catalog: branch without id")
		}
		if branches[branch.ID] {
			return errors.Errorf("catalog: duplicate branch %s", branch.ID)
		}
		branches[branch.ID] = true
	}

	grinds := make(map[entity.GrindType]bool, len(d.GrindOptions))
	for _, grind := range d.GrindOptions {
		grinds[grind.ID] = true
	}

	products := make(map[string]bool, len(d.Products))
	for _, product := range d.Products {
		if product.ID == "" {
			return errors.New("catalog: product without id")
		}
		if products[product.ID] {
			return errors.Errorf("catalog: duplicate product %s", product.ID)
		}
		for _, grind := range product.GrindOptions {
			if !grinds[grind] {
				return errors.Errorf("catalog: product %s offers unknown grind %s", product.ID, grind)
			}
		}
		products[product.ID] = true
	}

	for _, bp := range d.BranchProducts {
		if !branches[bp.BranchID] {
			return errors.Errorf("catalog: price row for unknown branch %s", bp.BranchID)
		}
		if !products[bp.ProductID] {
			return errors.Errorf("catalog: price row for unknown product %s", bp.ProductID)
		}
		if bp.Price.IsNegative() {
			return errors.Errorf("catalog: negative price for %s at %s", bp.ProductID, bp.BranchID)
		}
	}

	for _, option := range d.SubscriptionOptions {
		if option.Discount.IsNegative() || option.Discount.GreaterThan(entity.MaxDiscountPercent) {
			return errors.Errorf("catalog: discount out of range for %s", option.Frequency)
		}
	}

	return nil
}

func (repo *catalogRepository) Branches() []entity.Branch {
	branches := make([]entity.Branch, len(repo.doc.Branches))
	for i := range repo.doc.Branches {
		branches[i] = *repo.doc.Branches[i].Clone()
	}

	return branches
}

func (repo *catalogRepository) FindBranch(id string) (*entity.Branch, bool) {
	for i := range repo.doc.Branches {
		if repo.doc.Branches[i].ID == id {
			return repo.doc.Branches[i].Clone(), true
		}
	}

	return nil, false
}

func (repo *catalogRepository) Products() []entity.Product {
	products := make([]entity.Product, len(repo.doc.Products))
	for i := range repo.doc.Products {
		products[i] = cloneProduct(repo.doc.Products[i])
	}

	return products
}

func (repo *catalogRepository) FindProduct(id string) (*entity.Product, bool) {
	for i := range repo.doc.Products {
		if repo.doc.Products[i].ID == id {
			product := cloneProduct(repo.doc.Products[i])

			return &product, true
		}
	}

	return nil, false
}

func (repo *catalogRepository) BranchProducts(branchID string) []entity.BranchProduct {
	rows := []entity.BranchProduct{}
	for _, bp := range repo.doc.BranchProducts {
		if bp.BranchID == branchID {
			rows = append(rows, bp)
		}
	}

	return rows
}

func (repo *catalogRepository) FindBranchProduct(branchID, productID string) (*entity.BranchProduct, bool) {
	for _, bp := range repo.doc.BranchProducts {
		if bp.BranchID == branchID && bp.ProductID == productID {
			return &bp, true
		}
	}

	return nil, false
}

func (repo *catalogRepository) GrindOptions() []entity.GrindOption {
	return append([]entity.GrindOption{}, repo.doc.GrindOptions...)
}

func (repo *catalogRepository) FindGrindOption(grind entity.GrindType) (*entity.GrindOption, bool) {
	for _, option := range repo.doc.GrindOptions {
		if option.ID == grind {
			return &option, true
		}
	}

	return nil, false
}

func (repo *catalogRepository) Categories() []entity.CategoryInfo {
	return append([]entity.CategoryInfo{}, repo.doc.Categories...)
}

func (repo *catalogRepository) SubscriptionOptions() []entity.SubscriptionOption {
	return append([]entity.SubscriptionOption{}, repo.doc.SubscriptionOptions...)
}

func (repo *catalogRepository) FindSubscriptionOption(frequency entity.SubscriptionFrequency) (*entity.SubscriptionOption, bool) {
	for _, option := range repo.doc.SubscriptionOptions {
		if option.Frequency == frequency {
			return &option, true
		}
	}

	return nil, false
}

func cloneProduct(p entity.Product) entity.Product {
	p.Images = append([]string(nil), p.Images...)
	p.TastingNotes = append([]string(nil), p.TastingNotes...)
	p.Tags = append([]string(nil), p.Tags...)
	p.GrindOptions = append([]entity.GrindType(nil), p.GrindOptions...)

	return p
}
