//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package schema

// APIPrefix is the fixed base path of the REST API. The resolver prepends
// it to any path that does not already carry it.
const APIPrefix = "/api/"

// Symbolic endpoint names. Client code refers to backend resources by these
// names only; the path templates live in endpointPaths below.
//
//goland:noinspection ALL
const (
	EndpointServerInfo = "server_info"
	EndpointAuthConfig = "auth_config"
	EndpointLogin      = "auth_login"
	EndpointLogout     = "auth_logout"
	EndpointRefresh    = "auth_refresh"
	EndpointUserMe     = "user_me"
	EndpointUserList   = "user_list"

	EndpointPartList     = "part_list"
	EndpointPartDetail   = "part_detail"
	EndpointCategoryList = "category_list"
	EndpointCategoryTree = "category_tree"

	EndpointStockList     = "stock_list"
	EndpointStockDetail   = "stock_detail"
	EndpointStockTransfer = "stock_transfer"
	EndpointLocationList  = "location_list"

	EndpointPurchaseOrderList = "purchase_order_list"
	EndpointSalesOrderList    = "sales_order_list"
	EndpointBuildOrderList    = "build_order_list"
	EndpointBuildAllocate     = "build_allocate"

	EndpointBarcode       = "barcode"
	EndpointImport        = "import"
	EndpointNotifications = "notifications"
	EndpointSettings      = "settings_global"
)

// endpointPaths is the static registry mapping symbolic endpoint names to
// path templates relative to APIPrefix. Templates may contain :name
// placeholders that the resolver substitutes. The registry is immutable
// after process start.
var endpointPaths = map[string]string{
	EndpointServerInfo: "",
	EndpointAuthConfig: "auth/config/",
	EndpointLogin:      "auth/login/",
	EndpointLogout:     "auth/logout/",
	EndpointRefresh:    "auth/refresh/",
	EndpointUserMe:     "user/me/",
	EndpointUserList:   "user/",

	EndpointPartList:     "part/",
	EndpointPartDetail:   "part/:id/",
	EndpointCategoryList: "category/",
	EndpointCategoryTree: "category/:id/tree/",

	EndpointStockList:     "stock/",
	EndpointStockDetail:   "stock/:id/",
	EndpointStockTransfer: "stock/:id/transfer/",
	EndpointLocationList:  "location/",

	EndpointPurchaseOrderList: "order/po/",
	EndpointSalesOrderList:    "order/so/",
	EndpointBuildOrderList:    "build/",
	EndpointBuildAllocate:     "build/:id/allocate/",

	EndpointBarcode:       "barcode/",
	EndpointImport:        "import/",
	EndpointNotifications: "notifications/",
	EndpointSettings:      "settings/global/",
}

// KnownEndpoint reports whether name is a registered symbolic endpoint
func KnownEndpoint(name string) bool {
	_, ok := endpointPaths[name]
	return ok
}

// Endpoints returns the symbolic names of all registered endpoints
func Endpoints() []string {
	names := make([]string, 0, len(endpointPaths))
	for name := range endpointPaths {
		names = append(names, name)
	}
	return names
}
