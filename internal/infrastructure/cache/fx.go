package cache

import "go.uber.org/fx"

// Module provides caches for fx DI
var Module = fx.Module("cache",
	fx.Provide(NewCategoryCache),
)
