// Package shellsvc - Test dựng menu và đánh dấu mục đang mở.
package shellsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeItems(sections []MenuSection) []string {
	var paths []string
	for _, section := range sections {
		for _, item := range section.Items {
			if item.Active {
				paths = append(paths, item.Path)
			}
		}
	}
	return paths
}

func TestMenuBuild_StaticLayout(t *testing.T) {
	service := NewMenuService()
	sections := service.Build("")

	require.NotEmpty(t, sections)
	assert.Empty(t, activeItems(sections), "không có route thì không mục nào active")

	var totalItems int
	for _, section := range sections {
		assert.NotEmpty(t, section.Title)
		totalItems += len(section.Items)
	}
	assert.GreaterOrEqual(t, totalItems, 10, "menu phải có đủ các màn hình quản trị")
}

func TestMenuBuild_ExactMatch(t *testing.T) {
	service := NewMenuService()
	sections := service.Build("/dashboard/products")

	assert.Equal(t, []string{"/dashboard/products"}, activeItems(sections))
}

func TestMenuBuild_ChildRouteHighlightsParent(t *testing.T) {
	service := NewMenuService()
	sections := service.Build("/dashboard/products/123/edit")

	assert.Equal(t, []string{"/dashboard/products"}, activeItems(sections), "route con phải làm sáng mục cha")
}

func TestMenuBuild_LongestPrefixWins(t *testing.T) {
	service := NewMenuService()

	sections := service.Build("/dashboard/inventory-products")
	assert.Equal(t, []string{"/dashboard/inventory-products"}, activeItems(sections),
		"inventory-products không được làm sáng mục inventory")

	sections = service.Build("/dashboard/inventory/abc")
	assert.Equal(t, []string{"/dashboard/inventory"}, activeItems(sections))
}

func TestMenuBuild_TrailingSlash(t *testing.T) {
	service := NewMenuService()
	sections := service.Build("/dashboard/orders/")

	assert.Equal(t, []string{"/dashboard/orders"}, activeItems(sections))
}

func TestMenuBuild_UnknownRoute(t *testing.T) {
	service := NewMenuService()
	sections := service.Build("/dashboard/unknown-page")

	assert.Empty(t, activeItems(sections), "route lạ thì không mục nào active")
}
