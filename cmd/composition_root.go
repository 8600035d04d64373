package cmd

import (
	"kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// NewHTTPServer wires every command and query handler into the HTTP server.
func (c *CompositionRoot) NewHTTPServer() *http.Server {
	return http.NewServer(
		http.Commands{
			SignUp:            c.CreateSignUpCommandHandler(),
			VerifyAccount:     c.CreateVerifyAccountCommandHandler(),
			CreateFood:        c.CreateCreateFoodCommandHandler(),
			UpdateFood:        c.CreateUpdateFoodCommandHandler(),
			DeleteFood:        c.CreateDeleteFoodCommandHandler(),
			AddCartItem:       c.CreateAddCartItemCommandHandler(),
			RemoveCartItem:    c.CreateRemoveCartItemCommandHandler(),
			ClearCart:         c.CreateClearCartCommandHandler(),
			PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
			UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
			CancelOrder:       c.CreateCancelOrderCommandHandler(),
		},
		http.Queries{
			GetProfile:    c.CreateGetProfileQueryHandler(),
			GetFoods:      c.CreateGetFoodsQueryHandler(),
			GetFood:       c.CreateGetFoodQueryHandler(),
			GetCart:       c.CreateGetCartQueryHandler(),
			GetOrder:      c.CreateGetOrderQueryHandler(),
			GetUserOrders: c.CreateGetUserOrdersQueryHandler(),
		},
	)
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyAccountCommandHandler() commands.VerifyAccountCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateFoodCommandHandler() commands.CreateFoodCommandHandler {
	var f commands.FoodUoWFactory = FuncFoodUoWFactory(func() commands.FoodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFoodCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateFoodCommandHandler() commands.UpdateFoodCommandHandler {
	var f commands.FoodUoWFactory = FuncFoodUoWFactory(func() commands.FoodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFoodCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteFoodCommandHandler() commands.DeleteFoodCommandHandler {
	var f commands.FoodUoWFactory = FuncFoodUoWFactory(func() commands.FoodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteFoodCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFoodsQueryHandler() queries.GetFoodsQueryHandler {
	return queries.NewGetFoodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFoodQueryHandler() queries.GetFoodQueryHandler {
	return queries.NewGetFoodQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncFoodUoWFactory func() commands.FoodUoW

func (f FuncFoodUoWFactory) Create() commands.FoodUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}
