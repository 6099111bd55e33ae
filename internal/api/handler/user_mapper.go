package handler

import "github.com/kn1ghtm0nster/blog/internal/core/ports"

func toUpdateInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.Password2,
		Admin:           req.Admin,
	}
}

func toUserDetailResponse(d *ports.UserDetail) userDetailResponse {
	resp := userDetailResponse{
		ID:        d.ID,
		Username:  d.Username,
		Email:     d.Email,
		Admin:     d.Admin,
		BlogPosts: d.PostIDs,
		Comments:  d.CommentIDs,
	}
	// Keep the JSON arrays non-null for users with no content.
	if resp.BlogPosts == nil {
		resp.BlogPosts = []string{}
	}
	if resp.Comments == nil {
		resp.Comments = []string{}
	}
	return resp
}

func toListUsersResponse(r *ports.ListUsersResult) listUsersResponse {
	items := make([]userDetailResponse, 0, len(r.Items))
	for i := range r.Items {
		items = append(items, toUserDetailResponse(&r.Items[i]))
	}
	return listUsersResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			PageSize:   r.PageSize,
			TotalPages: r.TotalPages,
		},
	}
}
