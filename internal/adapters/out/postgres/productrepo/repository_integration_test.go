package productrepo_test

import (
	"context"
	"testing"

	postgresadapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
)

type ProductCatalogIntegrationTestSuite struct {
	suite.Suite
	database *testdb.Database
	catalog  *productrepo.GormProductCatalog
}

func (suite *ProductCatalogIntegrationTestSuite) SetupSuite() {
	database, err := testdb.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgresadapter.Migrate(database.DB))
}

func (suite *ProductCatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(postgresadapter.Tables...))
	suite.catalog = productrepo.NewGormProductCatalog(suite.database.DB)
}

func (suite *ProductCatalogIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ProductCatalogIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	p := suite.newProduct(5)

	suite.Require().NoError(suite.catalog.Add(ctx, p))

	got, err := suite.catalog.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.Name(), got.Name())
	suite.Equal(5, got.Quantity())
	suite.True(p.Price().IsEqual(got.Price()))
	suite.True(got.SuppliedBy(p.SupplierID()))
}

func (suite *ProductCatalogIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.catalog.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductCatalogIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	p := suite.newProduct(1)
	suite.Require().NoError(suite.catalog.Add(ctx, p))

	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	got, err := productrepo.NewGormProductCatalog(tx).GetForUpdate(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(1, got.Quantity())
}

func (suite *ProductCatalogIntegrationTestSuite) TestDecrementQuantity() {
	ctx := context.Background()
	p := suite.newProduct(5)
	suite.Require().NoError(suite.catalog.Add(ctx, p))

	suite.Require().NoError(suite.catalog.DecrementQuantity(ctx, p.ID(), 3))
	suite.assertQuantity(p.ID(), 2)

	err := suite.catalog.DecrementQuantity(ctx, p.ID(), 3)
	suite.Require().Error(err)
	suite.ErrorIs(err, product.ErrOutOfStock)
	suite.assertQuantity(p.ID(), 2)

	suite.Require().NoError(suite.catalog.DecrementQuantity(ctx, p.ID(), 2))
	suite.assertQuantity(p.ID(), 0)
}

func (suite *ProductCatalogIntegrationTestSuite) TestDecrementQuantity_UnknownProduct() {
	err := suite.catalog.DecrementQuantity(context.Background(), kernel.NewUUID(), 1)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductCatalogIntegrationTestSuite) TestDecrementQuantity_NonPositive() {
	err := suite.catalog.DecrementQuantity(context.Background(), kernel.NewUUID(), 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ProductCatalogIntegrationTestSuite) newProduct(quantity int) *product.Product {
	price, err := kernel.MoneyFromString("9.99")
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Flour 25kg", price, quantity)
	suite.Require().NoError(err)
	return p
}

func (suite *ProductCatalogIntegrationTestSuite) assertQuantity(id kernel.UUID, expected int) {
	got, err := suite.catalog.Get(context.Background(), id)
	suite.Require().NoError(err)
	suite.Equal(expected, got.Quantity())
}

func TestProductCatalogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductCatalogIntegrationTestSuite))
}
