package main

import (
	"github.com/sirupsen/logrus"

	"sweet_admin/internal/global"
)

// InitRegistry đăng ký đường dẫn các resource trên admin API vào registry.
// Handler tra cứu registry theo tên resource khi cần đường dẫn động.
func InitRegistry() {
	paths := map[string]string{
		"categories":             global.ResourcePaths.Categories,
		"products":               global.ResourcePaths.Products,
		"clients":                global.ResourcePaths.Clients,
		"orders":                 global.ResourcePaths.Orders,
		"inventory-sessions":     global.ResourcePaths.InventorySessions,
		"inventory-products":     global.ResourcePaths.InventoryProducts,
		"inventory-transactions": global.ResourcePaths.InventoryTransactions,
		"roles":                  global.ResourcePaths.Roles,
		"users":                  global.ResourcePaths.Users,
		"vouchers":               global.ResourcePaths.Vouchers,
	}

	for name, path := range paths {
		registered, err := global.RegistryResourcePaths.Register(name, path)
		if err != nil {
			logrus.Fatalf("Failed to register resource path %s: %v", name, err)
		}
		if !registered {
			logrus.Warnf("Resource path %s already registered", name)
		}
	}

	logrus.Infof("Initialized resource path registry with %d resources", len(paths))
}
